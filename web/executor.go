package web

import (
	"context"
	"strings"
)

// Executor performs one HTTP exchange. Implementations must not retry and
// must return transport failures as errors; any HTTP status is a Response.
type Executor interface {
	Execute(ctx context.Context, q *Query, req *Request) (*Response, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, q *Query, req *Request) (*Response, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, q *Query, req *Request) (*Response, error) {
	return f(ctx, q, req)
}

func lowerKeys(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[strings.ToLower(k)] = v
	}
	return out
}
