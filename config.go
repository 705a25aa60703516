package twitter

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/anatolykoptev/go-twitterapi/web"
)

// Transport names accepted by ClientConfig.Transport.
const (
	TransportStealth = "stealth"
	TransportResty   = "resty"
)

// ClientConfig holds all configuration for the Twitter client.
type ClientConfig struct {
	// BearerToken is a static app-only bearer token.
	BearerToken string

	// ConsumerKey and ConsumerSecret obtain an app-only token through the
	// OAuth2 client-credentials grant. Ignored when BearerToken is set.
	ConsumerKey    string
	ConsumerSecret string

	// Account is an optional cookie session. Used when no token is configured.
	Account *Account

	// BaseURL overrides the API host. Default: https://api.twitter.com
	BaseURL string

	// Transport selects the executor: "stealth" (default) or "resty".
	Transport string

	// DefaultProxy is the proxy URL used when the account has none.
	DefaultProxy string

	// UserAgent overrides the default user agent for token-authorized calls.
	UserAgent string

	// Timeout bounds each request on the resty transport.
	Timeout time.Duration

	// Jitter adds a short random pause before each stealth request.
	Jitter bool

	// MetricsHook is called on each API request for external metrics collection.
	// endpoint is the operation name, success and rateLimited indicate the outcome.
	MetricsHook func(endpoint string, success, rateLimited bool)

	// SessionDir overrides the default session persistence directory.
	// Default: ~/.go-twitterapi/sessions
	SessionDir string

	// SessionTTL controls how long saved sessions are considered valid.
	SessionTTL time.Duration

	// Executor replaces the transport entirely. Mostly for tests.
	Executor web.Executor
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = web.DefaultBaseURL
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportStealth
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = web.DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
}

// FileConfig is the on-disk YAML layout read by LoadConfig.
type FileConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Transport  string        `yaml:"transport"`
	Proxy      string        `yaml:"proxy"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	Jitter     bool          `yaml:"jitter"`
	SessionDir string        `yaml:"session_dir"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	Auth       AuthConfig    `yaml:"auth"`
}

// AuthConfig holds the credential section of FileConfig. Values may be
// written as ${ENV_VAR} references.
type AuthConfig struct {
	BearerToken    string `yaml:"bearer_token"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	// Account is "username" or "username:auth_token:ct0".
	Account string `yaml:"account"`
}

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// applyEnvOverrides lets TWITTER_* variables win over the file.
func applyEnvOverrides(fc *FileConfig) {
	overrides := []struct {
		env string
		dst *string
	}{
		{"TWITTER_BASE_URL", &fc.BaseURL},
		{"TWITTER_TRANSPORT", &fc.Transport},
		{"TWITTER_PROXY", &fc.Proxy},
		{"TWITTER_SESSION_DIR", &fc.SessionDir},
		{"TWITTER_BEARER_TOKEN", &fc.Auth.BearerToken},
		{"TWITTER_CONSUMER_KEY", &fc.Auth.ConsumerKey},
		{"TWITTER_CONSUMER_SECRET", &fc.Auth.ConsumerSecret},
		{"TWITTER_ACCOUNT", &fc.Auth.Account},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}

// LoadConfig builds a ClientConfig from a YAML file, an optional .env file in
// the working directory and TWITTER_* environment variables. A missing file
// yields a config built from the environment only.
func LoadConfig(path string) (ClientConfig, error) {
	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	var fc FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return ClientConfig{}, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return ClientConfig{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	applyEnvOverrides(&fc)

	cfg := ClientConfig{
		BearerToken:    expandEnvVars(fc.Auth.BearerToken),
		ConsumerKey:    expandEnvVars(fc.Auth.ConsumerKey),
		ConsumerSecret: expandEnvVars(fc.Auth.ConsumerSecret),
		BaseURL:        fc.BaseURL,
		Transport:      fc.Transport,
		DefaultProxy:   expandEnvVars(fc.Proxy),
		UserAgent:      fc.UserAgent,
		Timeout:        fc.Timeout,
		Jitter:         fc.Jitter,
		SessionDir:     fc.SessionDir,
		SessionTTL:     fc.SessionTTL,
	}
	if raw := expandEnvVars(fc.Auth.Account); raw != "" {
		acc, err := ParseAccount(raw)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("auth.account: %w", err)
		}
		cfg.Account = acc
	}
	cfg.defaults()
	return cfg, nil
}
