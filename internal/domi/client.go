package domi

import (
	"net/http"
	"os"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://duomiapi.com"

	generatePath = "/api/gemini/nano-banana"
	editPath     = "/api/gemini/nano-banana-edit"
	statusPath   = "/api/gemini/nano-banana/status"

	// edits run longer than plain generation, hence the larger submit timeout
	generateTimeout = 60 * time.Second
	editTimeout     = 120 * time.Second
	statusTimeout   = 30 * time.Second

	defaultPollInterval    = 3 * time.Second
	defaultMaxPollAttempts = 30

	ModelGenerate = "nano-banana"
	ModelEdit     = "nano-banana-edit"
)

// EnvAPIToken is the environment variable consulted when a client is built
// without an explicit token.
const EnvAPIToken = "DOMI_API_TOKEN"

// Client talks to the Duomi nano-banana API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	token           string
	baseURL         string
	httpClient      *http.Client
	pollInterval    time.Duration
	maxPollAttempts int
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

func WithMaxPollAttempts(n int) Option {
	return func(c *Client) { c.maxPollAttempts = n }
}

// NewClient builds a client. An explicit WithToken takes priority over the
// DOMI_API_TOKEN environment variable.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:         defaultBaseURL,
		httpClient:      &http.Client{},
		pollInterval:    defaultPollInterval,
		maxPollAttempts: defaultMaxPollAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.token == "" {
		c.token = os.Getenv(EnvAPIToken)
	}
	return c
}

// CloneWithToken returns a copy of the client that authenticates with the
// supplied token but keeps every other setting.
func (c *Client) CloneWithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) requireToken() *Error {
	if c.token == "" {
		return newErrorf(CodeMissingAPIToken,
			"API token is required. Set the %s environment variable or pass an api_token parameter.", EnvAPIToken)
	}
	return nil
}

var (
	defaultMu     sync.Mutex
	defaultClient *Client
)

// DefaultClient returns the process-wide client used by calls that carry no
// explicit token, building one from the environment on first use.
func DefaultClient() *Client {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultClient == nil {
		defaultClient = NewClient()
	}
	return defaultClient
}

// SetDefault installs the shared client. Meant for startup wiring, before
// requests are being served.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()
}

// Config carries the client settings loaded from the config file.
type Config struct {
	APIToken string `mapstructure:"apiToken"`

	BaseURL string `mapstructure:"baseURL"`

	PollIntervalSeconds int `mapstructure:"pollIntervalSeconds"`

	MaxPollAttempts int `mapstructure:"maxPollAttempts"`
}

// Options converts the config into client options, skipping unset values.
func (cfg Config) Options() []Option {
	opts := make([]Option, 0, 4)
	if cfg.APIToken != "" {
		opts = append(opts, WithToken(cfg.APIToken))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.PollIntervalSeconds > 0 {
		opts = append(opts, WithPollInterval(time.Duration(cfg.PollIntervalSeconds)*time.Second))
	}
	if cfg.MaxPollAttempts > 0 {
		opts = append(opts, WithMaxPollAttempts(cfg.MaxPollAttempts))
	}
	return opts
}
