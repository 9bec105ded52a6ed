package v1

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DonovanMods/cfapi/internal/endpoint"
	"github.com/DonovanMods/cfapi/schema"
)

// GetMinecraftVersionsOptions are the optional parameters of GetMinecraftVersions.
type GetMinecraftVersionsOptions struct {
	SortDescending *bool `param:"sortDescending"`
}

// GetMinecraftVersions lists every known Minecraft version.
func (a *API) GetMinecraftVersions(ctx context.Context, opts *GetMinecraftVersionsOptions) (schema.APIResponse[[]schema.MinecraftGameVersion], error) {
	return endpoint.Do[schema.APIResponse[[]schema.MinecraftGameVersion]](ctx, a.r, a.logger, endpoint.Request{
		Op:      "GetMinecraftVersions",
		Method:  http.MethodGet,
		Path:    "v1/minecraft/version",
		Options: opts,
	})
}

// GetMinecraftVersion returns one Minecraft version, e.g. "1.20.1".
func (a *API) GetMinecraftVersion(ctx context.Context, version string) (schema.APIResponse[schema.MinecraftGameVersion], error) {
	return endpoint.Do[schema.APIResponse[schema.MinecraftGameVersion]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetMinecraftVersion",
		Method: http.MethodGet,
		Path:   "v1/minecraft/version/" + url.PathEscape(version),
	})
}

// GetMinecraftModLoadersOptions are the optional parameters of GetMinecraftModLoaders.
type GetMinecraftModLoadersOptions struct {
	// Version limits the list to loaders for one Minecraft version.
	Version *string `param:"version"`
	// IncludeAll also returns loaders that are neither latest nor recommended.
	IncludeAll *bool `param:"includeAll"`
}

// GetMinecraftModLoaders lists mod loader builds.
func (a *API) GetMinecraftModLoaders(ctx context.Context, opts *GetMinecraftModLoadersOptions) (schema.APIResponse[[]schema.MinecraftModLoaderIndex], error) {
	return endpoint.Do[schema.APIResponse[[]schema.MinecraftModLoaderIndex]](ctx, a.r, a.logger, endpoint.Request{
		Op:      "GetMinecraftModLoaders",
		Method:  http.MethodGet,
		Path:    "v1/minecraft/modloader",
		Options: opts,
	})
}

// GetMinecraftModLoader returns the full record of one mod loader build,
// e.g. "forge-47.2.0".
func (a *API) GetMinecraftModLoader(ctx context.Context, name string) (schema.APIResponse[schema.MinecraftModLoaderVersion], error) {
	return endpoint.Do[schema.APIResponse[schema.MinecraftModLoaderVersion]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetMinecraftModLoader",
		Method: http.MethodGet,
		Path:   "v1/minecraft/modloader/" + url.PathEscape(name),
	})
}
