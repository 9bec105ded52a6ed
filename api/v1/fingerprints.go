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

// GetFingerprintMatchesByGame looks up files of one game by their exact
// fingerprints.
func (a *API) GetFingerprintMatchesByGame(ctx context.Context, gameID int, fingerprints []int64) (schema.APIResponse[[]schema.FingerprintMatchesResult], error) {
	return a.fingerprintMatches(ctx, "GetFingerprintMatchesByGame", fmt.Sprintf("v1/fingerprints/%d", gameID), fingerprints)
}

// GetFingerprintMatches looks up files of any game by their exact fingerprints.
func (a *API) GetFingerprintMatches(ctx context.Context, fingerprints []int64) (schema.APIResponse[[]schema.FingerprintMatchesResult], error) {
	return a.fingerprintMatches(ctx, "GetFingerprintMatches", "v1/fingerprints", fingerprints)
}

func (a *API) fingerprintMatches(ctx context.Context, op, path string, fingerprints []int64) (schema.APIResponse[[]schema.FingerprintMatchesResult], error) {
	if err := endpoint.Check(op, path, validate.NonEmpty("fingerprints", fingerprints)); err != nil {
		return schema.APIResponse[[]schema.FingerprintMatchesResult]{}, err
	}

	return endpoint.Do[schema.APIResponse[[]schema.FingerprintMatchesResult]](ctx, a.r, a.logger, endpoint.Request{
		Op:     op,
		Method: http.MethodPost,
		Path:   path,
		Values: params.Values{"fingerprints": fingerprints},
	})
}

// GetFingerprintFuzzyMatchesByGame matches folders of one game by the
// fingerprints of the files they contain.
func (a *API) GetFingerprintFuzzyMatchesByGame(ctx context.Context, gameID int, folders []schema.FolderFingerprint) (schema.APIResponse[[]schema.FingerprintFuzzyMatchResult], error) {
	return a.fuzzyMatches(ctx, "GetFingerprintFuzzyMatchesByGame", fmt.Sprintf("v1/fingerprints/fuzzy/%d", gameID), folders)
}

// GetFingerprintFuzzyMatches matches folders of any game by the fingerprints
// of the files they contain.
func (a *API) GetFingerprintFuzzyMatches(ctx context.Context, folders []schema.FolderFingerprint) (schema.APIResponse[[]schema.FingerprintFuzzyMatchResult], error) {
	return a.fuzzyMatches(ctx, "GetFingerprintFuzzyMatches", "v1/fingerprints/fuzzy", folders)
}

func (a *API) fuzzyMatches(ctx context.Context, op, path string, folders []schema.FolderFingerprint) (schema.APIResponse[[]schema.FingerprintFuzzyMatchResult], error) {
	if err := endpoint.Check(op, path, validate.NonEmpty("fingerprints", folders)); err != nil {
		return schema.APIResponse[[]schema.FingerprintFuzzyMatchResult]{}, err
	}

	return endpoint.Do[schema.APIResponse[[]schema.FingerprintFuzzyMatchResult]](ctx, a.r, a.logger, endpoint.Request{
		Op:     op,
		Method: http.MethodPost,
		Path:   path,
		Values: params.Values{"fingerprints": folders},
	})
}
