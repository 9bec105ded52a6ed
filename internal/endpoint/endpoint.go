// Package endpoint runs one API operation: filter the parameters, send the
// request through a transport.Requester and decode the body into the record
// the operation declares. Both endpoint groups go through Do.
package endpoint

import (
	"context"
	"maps"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/DonovanMods/cfapi/apierr"
	"github.com/DonovanMods/cfapi/internal/params"
	"github.com/DonovanMods/cfapi/schema"
	"github.com/DonovanMods/cfapi/transport"
)

// Request describes one call. Options is the caller's options struct, read
// through its `param` tags; Values holds the required parameters and wins
// over Options on a name clash.
type Request struct {
	Op        string
	Method    string
	Path      string
	Options   any
	Values    params.Values
	Overrides []params.Override
}

// Do sends req and decodes the response into T. Each operation picks T
// itself, so no envelope is ever unwrapped by guesswork.
func Do[T any](ctx context.Context, r transport.Requester, logger zerolog.Logger, req Request) (T, error) {
	var out T

	vals, err := params.FromStruct(req.Options)
	if err != nil {
		return out, &apierr.OperationError{Op: req.Op, Path: req.Path, Err: err}
	}
	maps.Copy(vals, req.Values)
	vals = params.Filter(vals, req.Overrides...)

	logger.Debug().
		Str("op", req.Op).
		Str("method", req.Method).
		Str("endpoint", req.Path).
		Msg("CurseForge operation")

	var raw any
	switch req.Method {
	case http.MethodPost:
		raw, err = r.Post(ctx, req.Path, vals)
	default:
		raw, err = r.Get(ctx, req.Path, vals)
	}
	if err != nil {
		return out, &apierr.OperationError{Op: req.Op, Path: req.Path, Err: err}
	}

	if err := schema.Decode(raw, &out); err != nil {
		return out, &apierr.OperationError{Op: req.Op, Path: req.Path, Err: err}
	}
	return out, nil
}

// Check runs caller-side validations and wraps the first failure.
func Check(op, path string, errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return &apierr.OperationError{Op: op, Path: path, Err: err}
		}
	}
	return nil
}
