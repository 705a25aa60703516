package web

import (
	"encoding/json"
	"fmt"
)

// Result pairs the deserialized response of one call with the raw exchange.
// Exactly one of Model and APIError is set.
type Result[T any] struct {
	Response *Response
	Model    *T
	APIError *APIError
}

// Succeeded reports whether the API accepted the call.
func (r *Result[T]) Succeeded() bool {
	return r.APIError == nil
}

// NewResult decodes resp into a Result. A non-2xx status yields a failed
// Result, not an error; an error is returned only if a 2xx body cannot be decoded.
func NewResult[T any](resp *Response) (*Result[T], error) {
	if !resp.IsSuccess() {
		return &Result[T]{Response: resp, APIError: ParseAPIError(resp)}, nil
	}
	model := new(T)
	if len(resp.Content) > 0 {
		if err := json.Unmarshal(resp.Content, model); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", resp.Endpoint, err)
		}
	}
	return &Result[T]{Response: resp, Model: model}, nil
}
