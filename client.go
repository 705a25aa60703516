package twitter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/anatolykoptev/go-twitterapi/internal/controllers"
	"github.com/anatolykoptev/go-twitterapi/web"
)

// Client is the top-level Twitter API client.
type Client struct {
	executor    web.Executor
	tokenSource oauth2.TokenSource
	account     *Account
	cfg         ClientConfig

	tweetsV2 *TweetsV2Requester
}

// NewClient creates a fully-wired Twitter client.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	c := &Client{cfg: cfg}

	var mode web.CredentialsMode
	switch {
	case cfg.BearerToken != "":
		mode = web.ModeBearer
	case cfg.ConsumerKey != "" && cfg.ConsumerSecret != "":
		cc := clientcredentials.Config{
			ClientID:     cfg.ConsumerKey,
			ClientSecret: cfg.ConsumerSecret,
			TokenURL:     cfg.BaseURL + "/oauth2/token",
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		c.tokenSource = cc.TokenSource(context.Background())
		mode = web.ModeOAuth2
	case cfg.Account != nil:
		if err := c.prepareAccount(cfg.Account); err != nil {
			return nil, err
		}
		c.account = cfg.Account
		mode = web.ModeSession
	default:
		return nil, fmt.Errorf("twitter client: %w", web.ErrNoCredentials)
	}

	executor := cfg.Executor
	if executor == nil {
		var err error
		if executor, err = c.buildExecutor(); err != nil {
			return nil, err
		}
	}
	c.executor = &instrumentedExecutor{next: executor, client: c}
	c.tweetsV2 = &TweetsV2Requester{
		controller: controllers.NewTweetsV2Controller(c.executor),
		newRequest: c.newRequest,
	}

	slog.Info("twitter client ready",
		slog.String("auth", mode.String()),
		slog.String("transport", cfg.Transport))
	return c, nil
}

// buildExecutor creates the configured transport.
func (c *Client) buildExecutor() (web.Executor, error) {
	proxy := c.cfg.DefaultProxy
	if c.account != nil && c.account.Proxy != "" {
		proxy = c.account.Proxy
	}

	switch c.cfg.Transport {
	case TransportStealth:
		opts := []stealth.ClientOption{
			stealth.WithHeaderOrder(web.HeaderOrder),
		}
		if proxy != "" {
			opts = append(opts, stealth.WithProxy(proxy))
		}
		if c.account != nil && c.account.Profile.UserAgent != "" {
			opts = append(opts, stealth.WithProfile(c.account.Profile.TLSProfile))
		}
		bc, err := stealth.NewClient(opts...)
		if err != nil {
			return nil, fmt.Errorf("stealth client: %w", err)
		}
		if proxy != "" {
			slog.Debug("using proxy", slog.String("proxy", stealth.MaskProxy(proxy)))
		}
		return web.NewStealthExecutor(bc, c.cfg.Jitter), nil
	case TransportResty:
		rc := resty.New()
		if proxy != "" {
			rc.SetProxy(proxy)
		}
		return web.NewRestyExecutor(rc, c.cfg.Timeout), nil
	}
	return nil, fmt.Errorf("unknown transport %q", c.cfg.Transport)
}

// newRequest builds the request context for one call. Cookie sessions get a
// fresh ct0 once the current one is older than ct0MaxAge.
func (c *Client) newRequest() *web.Request {
	req := &web.Request{BaseURL: c.cfg.BaseURL, UserAgent: c.cfg.UserAgent}
	switch {
	case c.cfg.BearerToken != "":
		req.Credentials.BearerToken = c.cfg.BearerToken
	case c.tokenSource != nil:
		req.Credentials.TokenSource = c.tokenSource
	case c.account != nil:
		if c.account.CT0Age() > ct0MaxAge {
			c.account.RotateCT0()
			slog.Debug("ct0 rotated", slog.String("user", c.account.Username))
			c.persistAccount(c.account)
		}
		req.Credentials = c.account.Credentials()
	}
	return req
}

// TweetsV2 returns the requester for the v2 tweet endpoints.
func (c *Client) TweetsV2() *TweetsV2Requester {
	return c.tweetsV2
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(endpoint string, success, rateLimited bool) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(endpoint, success, rateLimited)
	}
}

// instrumentedExecutor reports every exchange to the metrics hook and keeps
// the session ct0 in sync with the server.
type instrumentedExecutor struct {
	next   web.Executor
	client *Client
}

func (e *instrumentedExecutor) Execute(ctx context.Context, q *web.Query, req *web.Request) (*web.Response, error) {
	resp, err := e.next.Execute(ctx, q, req)
	if err != nil {
		e.client.recordAPICall(q.Endpoint, false, false)
		return nil, err
	}

	e.client.recordAPICall(q.Endpoint, resp.IsSuccess(), resp.Status == http.StatusTooManyRequests)
	if !resp.IsSuccess() {
		slog.Debug("api rejected request",
			slog.String("endpoint", q.Endpoint),
			slog.Int("status", resp.Status))
	}

	if acc := e.client.account; acc != nil && req.Credentials.Mode() == web.ModeSession {
		if ct0 := extractCT0FromHeaders(resp.Headers); ct0 != "" && ct0 != req.Credentials.CT0 {
			acc.SetCT0(ct0)
			e.client.persistAccount(acc)
		}
	}
	return resp, nil
}
