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

// GetModFile returns a single file of a mod.
func (a *API) GetModFile(ctx context.Context, modID, fileID int) (schema.APIResponse[schema.File], error) {
	return endpoint.Do[schema.APIResponse[schema.File]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetModFile",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/mods/%d/files/%d", modID, fileID),
	})
}

// GetModFilesOptions filter the files of a mod.
type GetModFilesOptions struct {
	GameVersion       *string               `param:"gameVersion"`
	ModLoaderType     *schema.ModLoaderType `param:"modLoaderType" validate:"omitempty,enum"`
	GameVersionTypeID *int                  `param:"gameVersionTypeId"`

	Page `param:",squash"`
}

// GetModFiles lists the files of a mod, newest first.
func (a *API) GetModFiles(ctx context.Context, modID int, opts *GetModFilesOptions) (schema.PaginatedResponse[[]schema.File], error) {
	op, path := "GetModFiles", fmt.Sprintf("v1/mods/%d/files", modID)
	if err := endpoint.Check(op, path, validate.Struct(opts)); err != nil {
		return schema.PaginatedResponse[[]schema.File]{}, err
	}

	return endpoint.Do[schema.PaginatedResponse[[]schema.File]](ctx, a.r, a.logger, endpoint.Request{
		Op:      op,
		Method:  http.MethodPost,
		Path:    path,
		Options: opts,
	})
}

// GetFiles returns a list of files by id, across mods.
func (a *API) GetFiles(ctx context.Context, fileIDs []int) (schema.APIResponse[[]schema.File], error) {
	const op, path = "GetFiles", "v1/mods/files"
	if err := endpoint.Check(op, path, validate.NonEmpty("fileIds", fileIDs)); err != nil {
		return schema.APIResponse[[]schema.File]{}, err
	}

	return endpoint.Do[schema.APIResponse[[]schema.File]](ctx, a.r, a.logger, endpoint.Request{
		Op:     op,
		Method: http.MethodPost,
		Path:   path,
		Values: params.Values{"fileIds": fileIDs},
	})
}

// GetModFileChangelog returns the HTML changelog of a file.
func (a *API) GetModFileChangelog(ctx context.Context, modID, fileID int) (schema.APIResponse[string], error) {
	return endpoint.Do[schema.APIResponse[string]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetModFileChangelog",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/mods/%d/files/%d/changelog", modID, fileID),
	})
}

// GetModFileDownloadURL returns the download URL of a file.
//
// The API answers 403 when the mod author has disabled third-party
// distribution; the file must then be downloaded from the website.
func (a *API) GetModFileDownloadURL(ctx context.Context, modID, fileID int) (schema.APIResponse[string], error) {
	return endpoint.Do[schema.APIResponse[string]](ctx, a.r, a.logger, endpoint.Request{
		Op:     "GetModFileDownloadURL",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("v1/mods/%d/files/%d/download-url", modID, fileID),
	})
}
