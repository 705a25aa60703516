package web

import (
	"strconv"
	"strings"
	"time"
)

// Response is the raw outcome of one HTTP exchange.
type Response struct {
	Endpoint string
	Method   string
	URL      string
	Status   int
	Headers  map[string]string // lower-cased names
	Content  []byte
	Duration time.Duration
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// Header returns the named response header, case-insensitively.
func (r *Response) Header(name string) string {
	return r.Headers[strings.ToLower(name)]
}

// RateLimitRemaining returns the x-rate-limit-remaining header, if present.
func (r *Response) RateLimitRemaining() (int, bool) {
	n, err := strconv.Atoi(r.Header("x-rate-limit-remaining"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// RateLimitReset returns when the current rate-limit window resets.
// Falls back to 15 minutes from now if the header is missing or invalid.
func (r *Response) RateLimitReset() time.Time {
	return parseRateLimitReset(r.Header("x-rate-limit-reset"))
}

func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
