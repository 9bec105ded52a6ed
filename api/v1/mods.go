package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DonovanMods/cfapi/internal/endpoint"
	"github.com/DonovanMods/cfapi/internal/params"
	"github.com/DonovanMods/cfapi/internal/validate"
	"github.com/DonovanMods/cfapi/schema"
)

// SearchModsOptions are the filters of SearchMods. A list filter replaces its
// singular form when both are set: CategoryIDs wins over CategoryID,
// GameVersions over GameVersion and ModLoaderTypes over ModLoaderType.
type SearchModsOptions struct {
	// ClassID filters by section id, discoverable via GetCategories.
	ClassID     *int  `param:"classId"`
	CategoryID  *int  `param:"categoryId"`
	CategoryIDs []int `param:"categoryIds" validate:"omitempty,max=10"`

	GameVersion  *string  `param:"gameVersion"`
	GameVersions []string `param:"gameVersions" validate:"omitempty,max=4"`

	// SearchFilter is free text matched against mod names and authors.
	SearchFilter *string                     `param:"searchFilter"`
	SortField    *schema.ModsSearchSortField `param:"sortField" validate:"omitempty,enum"`
	SortOrder    *schema.SortOrder           `param:"sortOrder" validate:"omitempty,enum"`

	// ModLoaderType must be coupled with GameVersion.
	ModLoaderType  *schema.ModLoaderType  `param:"modLoaderType" validate:"omitempty,enum"`
	ModLoaderTypes []schema.ModLoaderType `param:"modLoaderTypes" validate:"omitempty,max=5,dive,enum"`

	GameVersionTypeID *int `param:"gameVersionTypeId"`
	// AuthorID matches mods the author is a member of, PrimaryAuthorID only
	// those they own.
	AuthorID        *int    `param:"authorId"`
	PrimaryAuthorID *int    `param:"primaryAuthorId"`
	Slug            *string `param:"slug"`

	Page `param:",squash"`
}

// SearchMods returns the mods of a game matching the given filters.
func (a *API) SearchMods(ctx context.Context, gameID int, opts *SearchModsOptions) (schema.PaginatedResponse[[]schema.Mod], error) {
	const op, path = "SearchMods", "v1/mods/search"
	if err := endpoint.Check(op, path, validate.Struct(opts)); err != nil {
		return schema.PaginatedResponse[[]schema.Mod]{}, err
	}

	return endpoint.Do[schema.PaginatedResponse[[]schema.Mod]](ctx, a.r, a.logger, endpoint.Request{
		Op:        op,
		Method:    http.MethodGet,
		Path:      path,
		Options:   opts,
		Values:    params.Values{"gameId": gameID},
		Overrides: params.SearchOverrides,
	})
}

// GetMod returns a single mod.
func (a *API) GetMod(ctx context.Context, modID int) (schema.APIResponse[schema.Mod], error) {
	return endpoint.Do[schema.APIResponse[schema.Mod]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetMod",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/mods/%d", modID),
	})
}

// GetModsOptions are the optional parameters of GetMods.
type GetModsOptions struct {
	// FilterPCOnly drops mods that are not available on PC.
	FilterPCOnly *bool `param:"filterPcOnly"`
}

// GetMods returns a list of mods by id. It is a POST so that long id lists
// fit in the request.
func (a *API) GetMods(ctx context.Context, modIDs []int, opts *GetModsOptions) (schema.APIResponse[[]schema.Mod], error) {
	const op, path = "GetMods", "v1/mods"
	if err := endpoint.Check(op, path, validate.NonEmpty("modIds", modIDs)); err != nil {
		return schema.APIResponse[[]schema.Mod]{}, err
	}

	return endpoint.Do[schema.APIResponse[[]schema.Mod]](ctx, a.r, a.logger, endpoint.Request{
		Op:      op,
		Method:  http.MethodPost,
		Path:    path,
		Options: opts,
		Values:  params.Values{"modIds": modIDs},
	})
}

// GetFeaturedModsOptions are the optional parameters of GetFeaturedMods.
type GetFeaturedModsOptions struct {
	ExcludedModIDs    []int `param:"excludedModIds"`
	GameVersionTypeID *int  `param:"gameVersionTypeId"`
}

// GetFeaturedMods returns the featured, popular and recently updated mods of
// a game. The response has no data envelope.
func (a *API) GetFeaturedMods(ctx context.Context, gameID int, opts *GetFeaturedModsOptions) (schema.GetFeaturedModsResponse, error) {
	return endpoint.Do[schema.GetFeaturedModsResponse](ctx, a.r, a.logger, endpoint.Request{
		Op:      "GetFeaturedMods",
		Method:  http.MethodPost,
		Path:    "v1/mods/featured",
		Options: opts,
		Values:  params.Values{"gameId": gameID},
	})
}

// GetModDescriptionOptions select the format of the description.
type GetModDescriptionOptions struct {
	Raw      *bool `param:"raw"`
	Stripped *bool `param:"stripped"`
	Markup   *bool `param:"markup"`
}

// GetModDescription returns the HTML description of a mod.
func (a *API) GetModDescription(ctx context.Context, modID int, opts *GetModDescriptionOptions) (schema.APIResponse[string], error) {
	return endpoint.Do[schema.APIResponse[string]](ctx, a.r, a.logger, endpoint.Request{
		Op:      "GetModDescription",
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("v1/mods/%d/description", modID),
		Options: opts,
	})
}
