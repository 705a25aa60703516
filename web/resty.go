package web

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyExecutor sends requests through a plain resty client.
type RestyExecutor struct {
	client *resty.Client
}

// NewRestyExecutor wraps client. A nil client gets a default one.
func NewRestyExecutor(client *resty.Client, timeout time.Duration) *RestyExecutor {
	if client == nil {
		client = resty.New()
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &RestyExecutor{client: client}
}

// Execute implements Executor.
func (e *RestyExecutor) Execute(ctx context.Context, q *Query, req *Request) (*Response, error) {
	headers, err := req.Headers(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Endpoint, err)
	}
	// net/http only decompresses transparently when it set accept-encoding itself
	delete(headers, "accept-encoding")

	r := e.client.R().
		SetContext(ctx).
		SetHeaders(headers)
	if len(q.Body) > 0 {
		r.SetBody(q.Body)
	}

	start := time.Now()
	resp, err := r.Execute(q.Method, q.URL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Warn("request failed", slog.String("endpoint", q.Endpoint), slog.Any("error", err))
		return nil, fmt.Errorf("%s %s: %w", q.Method, q.Endpoint, err)
	}

	hdrs := make(map[string]string, len(resp.Header()))
	for k, v := range resp.Header() {
		hdrs[strings.ToLower(k)] = strings.Join(v, ", ")
	}

	out := &Response{
		Endpoint: q.Endpoint,
		Method:   q.Method,
		URL:      q.URL,
		Status:   resp.StatusCode(),
		Headers:  hdrs,
		Content:  resp.Body(),
		Duration: time.Since(start),
	}
	slog.Debug("request done",
		slog.String("endpoint", q.Endpoint),
		slog.Int("status", out.Status),
		slog.Duration("took", out.Duration))
	return out, nil
}
