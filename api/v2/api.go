// Package v2 exposes the v2 endpoints of the CurseForge API.
package v2

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/DonovanMods/cfapi/internal/endpoint"
	"github.com/DonovanMods/cfapi/schema"
	"github.com/DonovanMods/cfapi/transport"
)

// API is the v2 endpoint group.
type API struct {
	r      transport.Requester
	logger zerolog.Logger
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger for operation tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *API) {
		a.logger = logger
	}
}

// New creates the v2 endpoint group on top of r.
func New(r transport.Requester, opts ...Option) *API {
	a := &API{
		r:      r,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetGameVersions lists the versions of a game grouped by version type.
// A private game is only visible to its own API key.
func (a *API) GetGameVersions(ctx context.Context, gameID int) (schema.APIResponse[[]schema.GameVersionsByType], error) {
	return endpoint.Do[schema.APIResponse[[]schema.GameVersionsByType]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetGameVersions",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v2/games/%d/versions", gameID),
	})
}
