package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidEvent is returned when an invocation payload is not a JSON
	// object.
	ErrInvalidEvent = errors.New("event is not a JSON object")

	// ErrInvalidBody is returned when an event's body is neither a JSON object
	// nor a string holding one.
	ErrInvalidBody = errors.New("event body is not a JSON object")
)

// decodeEvent parses a raw invocation payload. An empty payload is an empty
// event.
func decodeEvent(raw json.RawMessage) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	var event map[string]any
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", errors.Join(ErrInvalidEvent, err))
	}
	if event == nil {
		return nil, fmt.Errorf("decode event: %w", ErrInvalidEvent)
	}
	return event, nil
}

// callerName extracts the optional name from an invocation event.
// API Gateway and Function URL events carry it inside "body"; direct
// invocations carry it at the top level. An empty result means no name.
func callerName(event map[string]any) (string, error) {
	fields := event
	if raw, ok := event["body"]; ok {
		body, err := decodeBody(raw)
		if err != nil {
			return "", err
		}
		fields = body
	}
	return nameValue(fields["name"]), nil
}

func decodeBody(raw any) (map[string]any, error) {
	switch b := raw.(type) {
	case map[string]any:
		return b, nil
	case string:
		var fields map[string]any
		if err := json.Unmarshal([]byte(b), &fields); err != nil {
			return nil, fmt.Errorf("decode body: %w", errors.Join(ErrInvalidBody, err))
		}
		if fields == nil {
			return nil, fmt.Errorf("decode body: %w", ErrInvalidBody)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("decode body of type %T: %w", raw, ErrInvalidBody)
	}
}

// nameValue renders a decoded name. Empty JSON values (null, "", false, 0,
// [] and {}) mean no name.
func nameValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		if !n {
			return ""
		}
	case float64:
		if n == 0 {
			return ""
		}
	case int:
		if n == 0 {
			return ""
		}
	case []any:
		if len(n) == 0 {
			return ""
		}
	case map[string]any:
		if len(n) == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
