package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanMods/cfapi/apierr"
	"github.com/DonovanMods/cfapi/internal/fixtures"
	"github.com/DonovanMods/cfapi/schema"
	"github.com/DonovanMods/cfapi/transport"
)

func newServerAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(transport.New("test-api-key", transport.WithBaseURL(server.URL), transport.WithHTTPClient(server.Client())))
}

func TestAPI_SearchMods_ListOverridesSingular(t *testing.T) {
	api := newServerAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/mods/search/", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))

		q := r.URL.Query()
		assert.Equal(t, "432", q.Get("gameId"))
		assert.Equal(t, "[7,8]", q.Get("categoryIds"))
		assert.False(t, q.Has("categoryId"), "categoryIds must replace categoryId")
		assert.False(t, q.Has("index"))
		assert.False(t, q.Has("pageSize"))
		assert.False(t, q.Has("searchFilter"))
		assert.Len(t, q, 2)

		_, _ = w.Write([]byte(fixtures.Page(fixtures.List(fixtures.Mod), 0, 50, 1, 1)))
	})

	resp, err := api.SearchMods(context.Background(), 432, &SearchModsOptions{
		CategoryID:  schema.Ptr(5),
		CategoryIDs: []int{7, 8},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "jei", resp.Data[0].Slug)
	assert.Equal(t, 1, resp.Pagination.ResultCount)
}

func TestAPI_SearchMods_Filters(t *testing.T) {
	api, stub := newStub(fixtures.Page(`[]`, 0, 20, 0, 0))

	_, err := api.SearchMods(context.Background(), 432, &SearchModsOptions{
		CategoryID:     schema.Ptr(5),
		GameVersion:    schema.Ptr("1.20.1"),
		SearchFilter:   schema.Ptr("jei"),
		SortField:      schema.Ptr(schema.SortFieldPopularity),
		SortOrder:      schema.Ptr(schema.SortOrderDesc),
		ModLoaderType:  schema.Ptr(schema.ModLoaderForge),
		ModLoaderTypes: []schema.ModLoaderType{schema.ModLoaderForge, schema.ModLoaderNeoForge},
		Page:           Page{PageSize: schema.Ptr(20)},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"gameId":         432,
		"categoryId":     5,
		"gameVersion":    "1.20.1",
		"searchFilter":   "jei",
		"sortField":      schema.SortFieldPopularity,
		"sortOrder":      schema.SortOrderDesc,
		"modLoaderTypes": []schema.ModLoaderType{schema.ModLoaderForge, schema.ModLoaderNeoForge},
		"pageSize":       20,
	}, stub.last(t).values)
}

func TestAPI_SearchMods_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts *SearchModsOptions
	}{
		{name: "too many categories", opts: &SearchModsOptions{CategoryIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}}},
		{name: "too many game versions", opts: &SearchModsOptions{GameVersions: []string{"1", "2", "3", "4", "5"}}},
		{name: "too many loaders", opts: &SearchModsOptions{ModLoaderTypes: []schema.ModLoaderType{0, 1, 2, 3, 4, 5}}},
		{name: "unknown loader", opts: &SearchModsOptions{ModLoaderTypes: []schema.ModLoaderType{42}}},
		{name: "unknown sort field", opts: &SearchModsOptions{SortField: schema.Ptr(schema.ModsSearchSortField(99))}},
		{name: "unknown sort order", opts: &SearchModsOptions{SortOrder: schema.Ptr(schema.SortOrder("up"))}},
		{name: "page too large", opts: &SearchModsOptions{Page: Page{PageSize: schema.Ptr(100)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, stub := newStub(`{}`)

			_, err := api.SearchMods(context.Background(), 432, tt.opts)
			assert.ErrorIs(t, err, apierr.ErrInvalidRequest)
			assert.Empty(t, stub.calls)
		})
	}
}

func TestAPI_GetMod(t *testing.T) {
	api, stub := newStub(fixtures.Data(fixtures.Mod))

	resp, err := api.GetMod(context.Background(), 238222)
	require.NoError(t, err)

	mod := resp.Data
	assert.Equal(t, 238222, mod.ID)
	assert.Equal(t, schema.ModStatusApproved, mod.Status)
	assert.Equal(t, int64(304918275), mod.DownloadCount)
	assert.Equal(t, "mezz", mod.Authors[0].Name)
	assert.Equal(t, schema.ModLoaderForge, mod.LatestFilesIndexes[0].ModLoader)
	require.NotNil(t, mod.AllowModDistribution)
	assert.True(t, *mod.AllowModDistribution)
	assert.Nil(t, mod.Rating)
	assert.Equal(t, "v1/mods/238222", stub.last(t).endpoint)
}

func TestAPI_GetMods(t *testing.T) {
	api := newServerAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/mods/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"modIds":[1,2,3],"filterPcOnly":true}`, string(body))

		_, _ = w.Write([]byte(fixtures.Data(fixtures.List(fixtures.Mod, fixtures.Mod, fixtures.Mod))))
	})

	resp, err := api.GetMods(context.Background(), []int{1, 2, 3}, &GetModsOptions{FilterPCOnly: schema.Ptr(true)})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
}

func TestAPI_GetMods_NullBody(t *testing.T) {
	api := newServerAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	resp, err := api.GetMods(context.Background(), []int{1}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrTypeMismatch)
	assert.Nil(t, resp.Data)

	var sve *apierr.SchemaValidationError
	assert.ErrorAs(t, err, &sve)
}

func TestAPI_GetMods_EmptyIDs(t *testing.T) {
	api, stub := newStub(`{}`)

	_, err := api.GetMods(context.Background(), nil, nil)
	assert.ErrorIs(t, err, apierr.ErrInvalidRequest)
	assert.Empty(t, stub.calls)
}

func TestAPI_GetFeaturedMods(t *testing.T) {
	api, stub := newStub(`{"featured":[` + fixtures.Mod + `],"popular":[],"recentlyUpdated":[` + fixtures.Mod + `]}`)

	resp, err := api.GetFeaturedMods(context.Background(), 432, &GetFeaturedModsOptions{ExcludedModIDs: []int{238222}})
	require.NoError(t, err)
	assert.Len(t, resp.Featured, 1)
	assert.Empty(t, resp.Popular)
	assert.Len(t, resp.RecentlyUpdated, 1)

	c := stub.last(t)
	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, "v1/mods/featured", c.endpoint)
	assert.Equal(t, map[string]any{"gameId": 432, "excludedModIds": []int{238222}}, c.values)
}

func TestAPI_GetModDescription(t *testing.T) {
	api, stub := newStub(`{"data":"<p>View Items and Recipes</p>"}`)

	resp, err := api.GetModDescription(context.Background(), 238222, &GetModDescriptionOptions{Stripped: schema.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "<p>View Items and Recipes</p>", resp.Data)

	c := stub.last(t)
	assert.Equal(t, "v1/mods/238222/description", c.endpoint)
	assert.Equal(t, map[string]any{"stripped": false}, c.values)
}

func TestAPI_NonJSONBody(t *testing.T) {
	api := newServerAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>Service Unavailable</html>"))
	})

	_, err := api.GetMod(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrMalformedJSON)

	var opErr *apierr.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "GetMod", opErr.Op)
}

func TestAPI_UpstreamErrorBeforeDecode(t *testing.T) {
	api := newServerAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorCode":404,"errorMessage":"Mod not found"}`))
	})

	_, err := api.GetMod(context.Background(), 1)
	require.Error(t, err)

	var upstream *apierr.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.True(t, upstream.IsNotFound())
	assert.Equal(t, "Mod not found", upstream.Message)

	var sve *apierr.SchemaValidationError
	assert.False(t, errors.As(err, &sve), "error payload must not reach the decoder")
}
