package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const internalServerError = "Internal Server Error"

type successBody struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	RequestID   string `json:"request_id"`
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func jsonResponse(status int, body any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}

func errorResponse(requestID string) events.APIGatewayProxyResponse {
	// Two string fields cannot fail to marshal.
	b, _ := json.Marshal(errorBody{Error: internalServerError, RequestID: requestID})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}
