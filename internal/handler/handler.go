// Package handler implements the hello function's invocation handler.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/guild/hello-service/internal/config"
)

// LocalRequestID is reported when the invocation context has no request id,
// e.g. when the handler runs outside Lambda.
const LocalRequestID = "local-test"

// GreetingSource supplies the greeting for one invocation, returning fallback
// when it has nothing better.
type GreetingSource interface {
	Greeting(ctx context.Context, fallback string) string
}

// Handler answers invocation events with a greeting envelope.
type Handler struct {
	log      zerolog.Logger
	greeting GreetingSource
}

// New returns a Handler logging to log and reading greetings from greeting.
func New(log zerolog.Logger, greeting GreetingSource) *Handler {
	return &Handler{log: log, greeting: greeting}
}

// Handle processes one raw invocation payload. It never returns a non-nil
// error: every failure, including a payload that is not a JSON object or a
// panic, becomes a 500 envelope that carries only the request id.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (resp events.APIGatewayProxyResponse, err error) {
	requestID := requestIDFrom(ctx)
	log := h.log.With().Str("request_id", requestID).Logger()
	ctx = log.WithContext(ctx)

	log.Info().Msg("processing request")

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("request failed")
			resp, err = errorResponse(requestID), nil
		}
	}()

	resp, err = h.respond(ctx, event, requestID)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return errorResponse(requestID), nil
	}

	log.Info().Msg("request completed successfully")
	return resp, nil
}

func (h *Handler) respond(ctx context.Context, raw json.RawMessage, requestID string) (events.APIGatewayProxyResponse, error) {
	event, err := decodeEvent(raw)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	name, err := callerName(event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	message := h.greeting.Greeting(ctx, cfg.GreetingMessage)
	if name != "" {
		message = fmt.Sprintf("%s Welcome, %s!", message, name)
	}

	resp, err := jsonResponse(http.StatusOK, successBody{
		Message:     message,
		Environment: cfg.Environment,
		Version:     cfg.ServiceVersion,
		RequestID:   requestID,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("encode response: %w", err)
	}
	return resp, nil
}

func requestIDFrom(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return LocalRequestID
}
