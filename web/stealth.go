package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// StealthExecutor sends requests through a browser-fingerprinted client.
type StealthExecutor struct {
	client *stealth.BrowserClient
	jitter bool
}

// NewStealthExecutor wraps bc. With jitter set, every request is preceded by
// a short random pause.
func NewStealthExecutor(bc *stealth.BrowserClient, jitter bool) *StealthExecutor {
	return &StealthExecutor{client: bc, jitter: jitter}
}

type stealthOutcome struct {
	body    []byte
	headers map[string]string
	status  int
	err     error
}

// Execute implements Executor. The underlying client is not context-aware,
// so a cancelled ctx abandons the exchange rather than aborting it.
func (e *StealthExecutor) Execute(ctx context.Context, q *Query, req *Request) (*Response, error) {
	if e.jitter {
		if err := stealth.DefaultJitter.Sleep(ctx); err != nil {
			return nil, err
		}
	}

	headers, err := req.Headers(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Endpoint, err)
	}

	start := time.Now()
	done := make(chan stealthOutcome, 1)
	go func() {
		var body io.Reader
		if len(q.Body) > 0 {
			body = bytes.NewReader(q.Body)
		}
		b, h, status, err := e.client.DoWithHeaderOrder(q.Method, q.URL, headers, body, HeaderOrder)
		done <- stealthOutcome{body: b, headers: h, status: status, err: err}
	}()

	var out stealthOutcome
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out = <-done:
	}

	if out.err != nil {
		slog.Warn("request failed", slog.String("endpoint", q.Endpoint), slog.Any("error", out.err))
		return nil, fmt.Errorf("%s %s: %w", q.Method, q.Endpoint, out.err)
	}

	resp := &Response{
		Endpoint: q.Endpoint,
		Method:   q.Method,
		URL:      q.URL,
		Status:   out.status,
		Headers:  lowerKeys(out.headers),
		Content:  out.body,
		Duration: time.Since(start),
	}
	slog.Debug("request done",
		slog.String("endpoint", q.Endpoint),
		slog.Int("status", resp.Status),
		slog.Duration("took", resp.Duration))
	return resp, nil
}
