package cfapi

import (
	"github.com/rs/zerolog"

	v1 "github.com/DonovanMods/cfapi/api/v1"
	v2 "github.com/DonovanMods/cfapi/api/v2"
	"github.com/DonovanMods/cfapi/apierr"
	"github.com/DonovanMods/cfapi/config"
	"github.com/DonovanMods/cfapi/transport"
)

// Client groups the versioned endpoint sets over one transport.
type Client struct {
	V1 *v1.API
	V2 *v2.API
}

// NewClient creates a client authenticated with apiKey.
func NewClient(apiKey string, opts ...transport.Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierr.ErrMissingAPIKey
	}

	t := transport.New(apiKey, opts...)
	return NewWithRequester(t, t.Logger()), nil
}

// NewFromConfig creates a client from loaded settings. The configured base
// URL and log level are applied first, so opts can still override them.
func NewFromConfig(cfg *config.Config, logger zerolog.Logger, opts ...transport.Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	base := []transport.Option{
		transport.WithBaseURL(cfg.BaseURL),
		transport.WithLogger(logger.Level(level)),
	}
	return NewClient(cfg.APIKey, append(base, opts...)...)
}

// NewWithRequester builds both endpoint groups over a caller supplied
// Requester, e.g. a custom transport or a test stub.
func NewWithRequester(r transport.Requester, logger zerolog.Logger) *Client {
	return &Client{
		V1: v1.New(r, v1.WithLogger(logger)),
		V2: v2.New(r, v2.WithLogger(logger)),
	}
}
