package web

import (
	"testing"
	"time"
)

func TestAPIErrorClass(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected ErrorClass
	}{
		{"no errors", `{"data":{"id":"1"}}`, ErrorClassNone},
		{"empty errors", `{"errors":[]}`, ErrorClassNone},
		{"rate limited 88", `{"errors":[{"code":88}]}`, ErrorClassRateLimited},
		{"suspended 64", `{"errors":[{"code":64}]}`, ErrorClassSuspended},
		{"locked 326", `{"errors":[{"code":326}]}`, ErrorClassLocked},
		{"csrf 353", `{"errors":[{"code":353}]}`, ErrorClassCSRF},
		{"auth expired 32", `{"errors":[{"code":32}]}`, ErrorClassAuthExpired},
		{"blocked 161", `{"errors":[{"code":161}]}`, ErrorClassBlocked},
		{"not authorized 179", `{"errors":[{"code":179}]}`, ErrorClassNotAuthorized},
		{"not authorized 219", `{"errors":[{"code":219}]}`, ErrorClassNotAuthorized},
		{"internal 131", `{"errors":[{"code":131}]}`, ErrorClassInternal},
		{"duplicate 187", `{"errors":[{"code":187}]}`, ErrorClassDuplicate},
		{"unknown then known", `{"errors":[{"code":999},{"code":88}]}`, ErrorClassRateLimited},
		{"unknown code", `{"errors":[{"code":999}]}`, ErrorClassNone},
		{"invalid json", `{invalid`, ErrorClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAPIError(&Response{Status: 403, Content: []byte(tt.body)}).Class()
			if result != tt.expected {
				t.Fatalf("Class(%s) = %d, want %d", tt.body, result, tt.expected)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"v2 problem", 400, `{"title":"Invalid Request","detail":"One or more parameters to your request was invalid.","type":"https://api.twitter.com/2/problems/invalid-request"}`, "HTTP 400: One or more parameters to your request was invalid."},
		{"title only", 401, `{"title":"Unauthorized","type":"about:blank","status":401}`, "HTTP 401: Unauthorized"},
		{"v1 errors", 403, `{"errors":[{"code":187,"message":"Status is a duplicate."}]}`, "HTTP 403: Status is a duplicate. (code 187)"},
		{"plain text", 502, `Bad Gateway`, "HTTP 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseAPIError(&Response{Status: tt.status, Content: []byte(tt.body)})
			if err.Error() != tt.expected {
				t.Fatalf("Error() = %q, want %q", err.Error(), tt.expected)
			}
		})
	}
}

func TestParseRateLimitReset(t *testing.T) {
	// missing header
	resp := &Response{Headers: map[string]string{}}
	if time.Until(resp.RateLimitReset()) < 14*time.Minute {
		t.Fatal("expected ~15min fallback")
	}

	// invalid
	result := parseRateLimitReset("not-a-number")
	if time.Until(result) < 14*time.Minute {
		t.Fatal("expected ~15min fallback for invalid input")
	}

	resp.Headers["x-rate-limit-reset"] = "1700000000"
	if got := resp.RateLimitReset().Unix(); got != 1700000000 {
		t.Fatalf("expected unix 1700000000, got %d", got)
	}
}
