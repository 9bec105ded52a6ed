// Package v1 exposes the v1 endpoints of the CurseForge API, one method per
// operation. Every method validates its arguments, sends a filtered request
// through a transport.Requester and decodes the body into the record the
// endpoint documents.
package v1

import (
	"github.com/rs/zerolog"

	"github.com/DonovanMods/cfapi/transport"
)

// API is the v1 endpoint group.
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

// New creates the v1 endpoint group on top of r.
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

// Page selects a window of a paginated list. Index is zero based and
// Index + PageSize may not exceed 10,000. Unset fields take the API defaults:
// index 0 and 50 items.
type Page struct {
	Index    *int `param:"index" validate:"omitempty,min=0,window"`
	PageSize *int `param:"pageSize" validate:"omitempty,min=1,max=50"`
}
