package v1

import (
	"context"
	"net/http"

	"github.com/DonovanMods/cfapi/internal/endpoint"
	"github.com/DonovanMods/cfapi/internal/params"
	"github.com/DonovanMods/cfapi/schema"
)

// GetCategoriesOptions are the optional parameters of GetCategories.
type GetCategoriesOptions struct {
	// ClassID limits the result to the categories of one class.
	ClassID *int `param:"classId"`
	// ClassesOnly returns only top level classes.
	ClassesOnly *bool `param:"classesOnly"`
}

// GetCategories lists the categories of a game.
func (a *API) GetCategories(ctx context.Context, gameID int, opts *GetCategoriesOptions) (schema.APIResponse[[]schema.Category], error) {
	return endpoint.Do[schema.APIResponse[[]schema.Category]](ctx, a.r, a.logger, endpoint.Request{
		Op:      "GetCategories",
		Method:  http.MethodGet,
		Path:    "v1/categories",
		Options: opts,
		Values:  params.Values{"gameId": gameID},
	})
}
