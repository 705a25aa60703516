package web

import (
	"encoding/json"
	"fmt"
)

// ErrorClass categorizes API error responses by their v1.1 error code.
type ErrorClass int

const (
	ErrorClassNone          ErrorClass = iota
	ErrorClassRateLimited              // 88
	ErrorClassSuspended                // 64
	ErrorClassLocked                   // 326, captcha needed
	ErrorClassCSRF                     // 353, csrf token mismatch
	ErrorClassAuthExpired              // 32, could not authenticate
	ErrorClassBlocked                  // 161
	ErrorClassNotAuthorized            // 179, 219
	ErrorClassInternal                 // 131
	ErrorClassDuplicate                // 187, duplicate status
)

// APIError is a non-2xx answer from the API. It covers both the v2 problem
// format (title, detail, type) and the v1.1 errors array.
type APIError struct {
	Status int              `json:"-"`
	Title  string           `json:"title"`
	Detail string           `json:"detail"`
	Type   string           `json:"type"`
	Errors []APIErrorDetail `json:"errors"`
	Raw    string           `json:"-"`
}

// APIErrorDetail is one entry of the errors array.
type APIErrorDetail struct {
	Code       int                 `json:"code,omitempty"`
	Message    string              `json:"message"`
	Parameters map[string][]string `json:"parameters,omitempty"`
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
	case e.Title != "":
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Title)
	case len(e.Errors) > 0:
		return fmt.Sprintf("HTTP %d: %s (code %d)", e.Status, e.Errors[0].Message, e.Errors[0].Code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Raw)
}

// Class classifies the first known error code.
func (e *APIError) Class() ErrorClass {
	for _, d := range e.Errors {
		if c := classifyCode(d.Code); c != ErrorClassNone {
			return c
		}
	}
	return ErrorClassNone
}

// ParseAPIError builds an APIError from a failed response. Bodies that are not
// JSON are kept verbatim in Raw.
func ParseAPIError(resp *Response) *APIError {
	apiErr := &APIError{}
	if len(resp.Content) > 0 && json.Unmarshal(resp.Content, apiErr) != nil {
		apiErr = &APIError{}
	}
	apiErr.Status = resp.Status
	apiErr.Raw = truncateBytes(resp.Content, 500)
	return apiErr
}

func classifyCode(code int) ErrorClass {
	switch code {
	case 88:
		return ErrorClassRateLimited
	case 64:
		return ErrorClassSuspended
	case 326:
		return ErrorClassLocked
	case 353:
		return ErrorClassCSRF
	case 32:
		return ErrorClassAuthExpired
	case 161:
		return ErrorClassBlocked
	case 179, 219:
		return ErrorClassNotAuthorized
	case 131:
		return ErrorClassInternal
	case 187:
		return ErrorClassDuplicate
	}
	return ErrorClassNone
}
