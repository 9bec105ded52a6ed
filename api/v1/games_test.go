package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanMods/cfapi/apierr"
	"github.com/DonovanMods/cfapi/internal/fixtures"
	"github.com/DonovanMods/cfapi/schema"
)

func TestAPI_GetGame(t *testing.T) {
	api, stub := newStub(fixtures.Data(fixtures.Game))

	game, err := api.GetGame(context.Background(), 432)
	require.NoError(t, err)

	assert.Equal(t, 432, game.ID)
	assert.Equal(t, "Minecraft", game.Name)
	assert.Equal(t, schema.CoreStatusLive, game.Status)
	assert.Equal(t, schema.CoreAPIStatusPublic, game.APIStatus)

	c := stub.last(t)
	assert.Equal(t, http.MethodGet, c.method)
	assert.Equal(t, "v1/games/432", c.endpoint)
	assert.Empty(t, c.values)
}

func TestAPI_GetGame_RejectsBareRecord(t *testing.T) {
	api, _ := newStub(fixtures.Game)

	_, err := api.GetGame(context.Background(), 432)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrMissingField)

	var opErr *apierr.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "GetGame", opErr.Op)
	assert.Equal(t, "v1/games/432", opErr.Path)
}

func TestAPI_GetGame_NullBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "null body", body: `null`, field: ""},
		{name: "null data", body: `{"data":null}`, field: "data"},
		{name: "null status", body: `{"data":{"id":432,"status":null}}`, field: "data.status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newStub(tt.body)

			game, err := api.GetGame(context.Background(), 432)
			require.Error(t, err)
			assert.Zero(t, game.ID)

			var sve *apierr.SchemaValidationError
			require.ErrorAs(t, err, &sve)
			assert.Equal(t, tt.field, sve.Field)
		})
	}
}

func TestAPI_GetGames(t *testing.T) {
	api, stub := newStub(fixtures.Page(fixtures.List(fixtures.Game), 10, 1, 1, 11))

	resp, err := api.GetGames(context.Background(), &GetGamesOptions{
		Page: Page{Index: schema.Ptr(10), PageSize: schema.Ptr(1)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 11, resp.Pagination.TotalCount)
	assert.Equal(t, 10, resp.Pagination.Index)

	c := stub.last(t)
	assert.Equal(t, "v1/games", c.endpoint)
	assert.Equal(t, map[string]any{"index": 10, "pageSize": 1}, c.values)
}

func TestAPI_GetGames_Defaults(t *testing.T) {
	api, stub := newStub(fixtures.Page(`[]`, 0, 50, 0, 0))

	resp, err := api.GetGames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Empty(t, stub.last(t).values, "unset pagination must not be sent")
}

func TestAPI_GetGames_InvalidPage(t *testing.T) {
	tests := []struct {
		name string
		page Page
	}{
		{name: "page size too large", page: Page{PageSize: schema.Ptr(51)}},
		{name: "negative index", page: Page{Index: schema.Ptr(-1)}},
		{name: "window exceeded", page: Page{Index: schema.Ptr(9990), PageSize: schema.Ptr(50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, stub := newStub(`{}`)

			_, err := api.GetGames(context.Background(), &GetGamesOptions{Page: tt.page})
			assert.ErrorIs(t, err, apierr.ErrInvalidRequest)
			assert.Empty(t, stub.calls, "invalid request must not reach the transport")
		})
	}
}

func TestAPI_GetGameVersions(t *testing.T) {
	api, stub := newStub(`{"data":[{"type":75125,"versions":["1.20.1","1.20"]},{"type":68441,"versions":["Forge"]}]}`)

	resp, err := api.GetGameVersions(context.Background(), 432)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 75125, resp.Data[0].Type)
	assert.Equal(t, []string{"1.20.1", "1.20"}, resp.Data[0].Versions)
	assert.Equal(t, "v1/games/432/versions", stub.last(t).endpoint)
}

func TestAPI_GetGameVersionTypes(t *testing.T) {
	api, stub := newStub(`{"data":[{"id":517,"gameId":1,"name":"WoW Retail","slug":"wow_retail","isSyncable":true,"status":1}]}`)

	resp, err := api.GetGameVersionTypes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "wow_retail", resp.Data[0].Slug)
	assert.Equal(t, schema.GameVersionTypeStatusNormal, resp.Data[0].Status)
	assert.Equal(t, "v1/games/1/version-types", stub.last(t).endpoint)
}

func TestAPI_TransportErrorsAreWrapped(t *testing.T) {
	api, stub := newStub("")
	stub.err = &apierr.UpstreamError{StatusCode: http.StatusNotFound}

	_, err := api.GetGame(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierr.ErrNotFound))
	assert.Contains(t, err.Error(), "GetGame v1/games/999")
}
