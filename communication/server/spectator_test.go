package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"example.com/arena/engine"
	"example.com/arena/meta"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newSpectator(t *testing.T, maxTurns int) *Spectator {
	t.Helper()
	rules := meta.Default()
	rules.MaxTurns = maxTurns
	e, err := engine.New(rules, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	return NewSpectator(e)
}

func decode(t *testing.T, ctx *app.RequestContext, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), out))
}

func TestHandleState(t *testing.T) {
	s := newSpectator(t, 10)
	ctx := &app.RequestContext{}

	s.handleState(context.Background(), ctx)

	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	var body map[string]any
	decode(t, ctx, &body)
	require.Equal(t, float64(meta.GRID_SIZE), body["grid_size"])
	require.Equal(t, float64(0), body["turn_count"])
	require.Equal(t, true, body["active"])
	require.Nil(t, body["winner"])

	players := body["players"].([]any)
	require.Len(t, players, 2)
	require.Equal(t, "Blue", players[0].(map[string]any)["team"])
	require.Equal(t, "DEFENSIVE_PLAY", players[0].(map[string]any)["action"])
}

func TestHandleTurn(t *testing.T) {
	t.Run("advances one tick", func(t *testing.T) {
		s := newSpectator(t, 10)
		ctx := &app.RequestContext{}

		s.handleTurn(context.Background(), ctx)

		require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
		var snapshot struct {
			TurnCount int `json:"turn_count"`
		}
		decode(t, ctx, &snapshot)
		require.Equal(t, 1, snapshot.TurnCount)
	})

	t.Run("rejects ticks after game over", func(t *testing.T) {
		s := newSpectator(t, 1)
		s.handleTurn(context.Background(), &app.RequestContext{})
		ctx := &app.RequestContext{}

		s.handleTurn(context.Background(), ctx)

		require.Equal(t, consts.StatusConflict, ctx.Response.StatusCode())
		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		decode(t, ctx, &body)
		require.Equal(t, "game_over", body.Error.Code)
	})
}

func TestHandleActiveAndReset(t *testing.T) {
	s := newSpectator(t, 1)
	s.handleTurn(context.Background(), &app.RequestContext{})

	ctx := &app.RequestContext{}
	s.handleActive(context.Background(), ctx)
	var active map[string]bool
	decode(t, ctx, &active)
	require.False(t, active["active"])

	ctx = &app.RequestContext{}
	s.handleReset(context.Background(), ctx)
	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	var snapshot struct {
		Active    bool `json:"active"`
		TurnCount int  `json:"turn_count"`
	}
	decode(t, ctx, &snapshot)
	require.True(t, snapshot.Active)
	require.Zero(t, snapshot.TurnCount)
}

func TestAutoplay(t *testing.T) {
	t.Run("plays until the game is over", func(t *testing.T) {
		s := newSpectator(t, 5)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.Autoplay(ctx, time.Millisecond)

		require.False(t, s.engine.IsActive())
		require.NoError(t, ctx.Err(), "Should finish before the deadline")
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		s := newSpectator(t, 50)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s.Autoplay(ctx, time.Hour)

		require.True(t, s.engine.IsActive())
	})
}
