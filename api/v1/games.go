package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DonovanMods/cfapi/internal/endpoint"
	"github.com/DonovanMods/cfapi/internal/validate"
	"github.com/DonovanMods/cfapi/schema"
)

// GetGamesOptions are the optional parameters of GetGames.
type GetGamesOptions struct {
	Page `param:",squash"`
}

// GetGames lists the games the API key can access.
func (a *API) GetGames(ctx context.Context, opts *GetGamesOptions) (schema.PaginatedResponse[[]schema.Game], error) {
	const op, path = "GetGames", "v1/games"
	if err := endpoint.Check(op, path, validate.Struct(opts)); err != nil {
		return schema.PaginatedResponse[[]schema.Game]{}, err
	}

	return endpoint.Do[schema.PaginatedResponse[[]schema.Game]](ctx, a.r, a.logger, endpoint.Request{
		Op:      op,
		Method:  http.MethodGet,
		Path:    path,
		Options: opts,
	})
}

// GetGame returns a single game. Unlike the other single record endpoints
// the envelope is unwrapped.
func (a *API) GetGame(ctx context.Context, gameID int) (schema.Game, error) {
	resp, err := endpoint.Do[schema.APIResponse[schema.Game]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetGame",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/games/%d", gameID),
	})
	if err != nil {
		return schema.Game{}, err
	}
	return resp.Data, nil
}

// GetGameVersions lists the versions of a game grouped by version type.
func (a *API) GetGameVersions(ctx context.Context, gameID int) (schema.APIResponse[[]schema.GameVersionsByType], error) {
	return endpoint.Do[schema.APIResponse[[]schema.GameVersionsByType]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetGameVersions",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/games/%d/versions", gameID),
	})
}

// GetGameVersionTypes lists the version types of a game.
//
// Games with many versions (e.g. World of Warcraft) split them into types
// such as retail and classic, which GetGameVersions and file indexes refer
// to by id.
func (a *API) GetGameVersionTypes(ctx context.Context, gameID int) (schema.APIResponse[[]schema.GameVersionType], error) {
	return endpoint.Do[schema.APIResponse[[]schema.GameVersionType]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetGameVersionTypes",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/games/%d/version-types", gameID),
	})
}
