// Command hello-local runs the hello handler once outside Lambda and prints
// the decoded response body.
//
// Usage:
//
//	hello-local [-event '{"name":"Guild"}'] [-request-id id]
//	echo '{"body":"{\"name\":\"Guild\"}"}' | hello-local -event -
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"github.com/guild/hello-service/internal/config"
	"github.com/guild/hello-service/internal/greeting"
	"github.com/guild/hello-service/internal/handler"
	"github.com/guild/hello-service/internal/logger"
)

const defaultEvent = `{"name":"DevOps Engineer"}`

var newParameterClient greeting.ClientFactory = greeting.NewSSMClient

func main() {
	eventArg := flag.String("event", defaultEvent, `event JSON, or "-" to read it from stdin`)
	requestID := flag.String("request-id", "", "request id (default: random UUID)")
	flag.Parse()

	if err := run(context.Background(), *eventArg, *requestID, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, eventArg, requestID string, stdin io.Reader, stdout, stderr io.Writer) error {
	raw := []byte(eventArg)
	if eventArg == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		raw = b
	}

	if !json.Valid(raw) {
		return fmt.Errorf("parse event: invalid JSON")
	}

	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{AwsRequestID: requestID})

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	h := handler.New(logger.New(stderr, cfg.LogLevel), greeting.NewResolver(newParameterClient))

	resp, err := h.Handle(ctx, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "status: %d\n", resp.StatusCode)

	var body any
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}
