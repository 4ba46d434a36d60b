package usecase

import (
	"context"
	"testing"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGame(t *testing.T, env *testEnv, req *request.GameRequest) *response.GameResponse {
	t.Helper()
	resp, err := env.service.Game.CreateGame(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func elderScrolls() *request.GameRequest {
	return &request.GameRequest{
		Title:          "Elder Scrolls VI",
		Description:    "Open world RPG key",
		Platforms:      []string{"PC", "Xbox"},
		Categories:     []string{"RPG"},
		Price:          350,
		PaymentMethods: []string{"Nagad", "bKash"},
		PaymentModes:   []string{"Send Money", "Cash Out"},
	}
}

func TestCreateGameDefaultsActive(t *testing.T) {
	env := newTestEnv()

	game := seedGame(t, env, elderScrolls())
	assert.True(t, game.IsActive)
	assert.Equal(t, float64(350), game.Price)
	assert.Equal(t, []string{"Nagad", "bKash"}, game.PaymentMethods)
}

func TestCreateGameEmptyAllowList(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := elderScrolls()
	req.PaymentMethods = nil
	_, err := env.service.Game.CreateGame(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	req = elderScrolls()
	req.PaymentModes = []string{}
	_, err = env.service.Game.CreateGame(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Nothing was written.
	games, err := env.service.Game.ListAllGames(ctx, request.GameQuery{})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestCreateGameUnknownPaymentValue(t *testing.T) {
	env := newTestEnv()

	req := elderScrolls()
	req.PaymentMethods = []string{"Nagad", "PayPal"}
	_, err := env.service.Game.CreateGame(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "PayPal")
}

func TestUpdateGameRejectsEmptyAllowList(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())

	req := elderScrolls()
	req.PaymentModes = nil
	_, err := env.service.Game.UpdateGame(ctx, game.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// The stored entry still has its original allow-lists.
	games, err := env.service.Game.ListAllGames(ctx, request.GameQuery{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, []string{"Send Money", "Cash Out"}, games[0].PaymentModes)
}

func TestListGamesFilters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seedGame(t, env, elderScrolls())

	consoleOnly := elderScrolls()
	consoleOnly.Title = "Gran Turismo 8"
	consoleOnly.Platforms = []string{"PlayStation"}
	seedGame(t, env, consoleOnly)

	hidden := elderScrolls()
	hidden.Title = "Unreleased Beta"
	inactive := false
	hidden.IsActive = &inactive
	seedGame(t, env, hidden)

	// Buyers see active entries only.
	games, err := env.service.Game.ListGames(ctx, request.GameQuery{})
	require.NoError(t, err)
	assert.Len(t, games, 2)

	// Operators see everything.
	all, err := env.service.Game.ListAllGames(ctx, request.GameQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Platform filter.
	pc, err := env.service.Game.ListGames(ctx, request.GameQuery{Platform: "PC"})
	require.NoError(t, err)
	require.Len(t, pc, 1)
	assert.Equal(t, "Elder Scrolls VI", pc[0].Title)

	// Text filter is case-insensitive.
	found, err := env.service.Game.ListGames(ctx, request.GameQuery{Text: "gran"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Gran Turismo 8", found[0].Title)
}

func TestToggleGameFlipsVisibility(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())

	toggled, err := env.service.Game.ToggleGame(ctx, game.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	games, err := env.service.Game.ListGames(ctx, request.GameQuery{})
	require.NoError(t, err)
	assert.Empty(t, games)

	toggled, err = env.service.Game.ToggleGame(ctx, game.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestGameNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	missing := "0e8dcf0e-44a5-4c5e-9a3d-111111111111"

	_, err := env.service.Game.UpdateGame(ctx, missing, elderScrolls())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = env.service.Game.DeleteGame(ctx, missing)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = env.service.Game.ToggleGame(ctx, missing)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
