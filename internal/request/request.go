// Package request decodes and validates the JSON payload the runner
// receives on standard input.
package request

import (
	"encoding/json"
	"io"

	"notify-runner/internal/domain/model"
)

// Validation messages are part of the runner's output contract; callers
// surface them verbatim in the JSON result.
const (
	msgInvalidJSON = "Invalid JSON payload"
	msgInvalidURLs = "Invalid urls: expected list"
	msgInvalidText = "Invalid title/body"
)

// ValidationError reports a payload that does not match the request contract.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Request is a decoded notification request. URLs holds the raw string
// candidates in payload order; trimming and scheme validation belong to
// the destination builder, not the parser.
type Request struct {
	URLs    []string
	Message model.Message
}

// Decode reads a single JSON object from r and validates its shape.
// Field rules:
//   - urls: absent or null means empty; present but not an array is an error;
//     non-string entries are dropped silently.
//   - title/body: absent or null means ""; present but not a string is an error.
//   - notifyType: coerced to a known category, unknown values become info.
//
// Any returned error is a *ValidationError.
func Decode(r io.Reader) (*Request, error) {
	dec := json.NewDecoder(r)

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, &ValidationError{Message: msgInvalidJSON}
	}
	// A JSON null decodes into a nil map without error; the contract
	// requires an object at the top level.
	if payload == nil {
		return nil, &ValidationError{Message: msgInvalidJSON}
	}
	// Exactly one object per invocation: trailing tokens mean the caller
	// handed us something other than a single request.
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ValidationError{Message: msgInvalidJSON}
	}

	urls, err := urlsField(payload)
	if err != nil {
		return nil, err
	}

	title, err := textField(payload, "title")
	if err != nil {
		return nil, err
	}
	body, err := textField(payload, "body")
	if err != nil {
		return nil, err
	}

	rawType, _ := payload["notifyType"].(string)

	return &Request{
		URLs: urls,
		Message: model.Message{
			Title: title,
			Body:  body,
			Type:  model.ParseType(rawType),
		},
	}, nil
}

func urlsField(payload map[string]any) ([]string, error) {
	raw, ok := payload["urls"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Message: msgInvalidURLs}
	}
	var urls []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			urls = append(urls, s)
		}
	}
	return urls, nil
}

func textField(payload map[string]any, key string) (string, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Message: msgInvalidText}
	}
	return s, nil
}
