package server

import (
	"context"
	"sync"
	"time"

	"example.com/arena/engine"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/rs/zerolog/log"
)

// Spectator serves the engine's settled state over HTTP. Ticks run under the
// write lock, so readers never see a half-applied turn.
type Spectator struct {
	engine *engine.Engine
	mutex  sync.RWMutex
}

func NewSpectator(e *engine.Engine) *Spectator {
	return &Spectator{engine: e}
}

func (s *Spectator) RegisterRoutes(h *server.Hertz) {
	arena := h.Group("/api/arena")
	arena.GET("/state", s.handleState)
	arena.GET("/active", s.handleActive)
	arena.POST("/turn", s.handleTurn)
	arena.POST("/reset", s.handleReset)
}

func (s *Spectator) handleState(_ context.Context, ctx *app.RequestContext) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	ctx.JSON(consts.StatusOK, s.engine.Snapshot())
}

func (s *Spectator) handleActive(_ context.Context, ctx *app.RequestContext) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	ctx.JSON(consts.StatusOK, map[string]bool{"active": s.engine.IsActive()})
}

func (s *Spectator) handleTurn(_ context.Context, ctx *app.RequestContext) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.engine.IsActive() {
		ctx.JSON(consts.StatusConflict, map[string]any{
			"error": map[string]string{
				"code":    "game_over",
				"message": s.engine.Snapshot().Reason,
			},
		})
		return
	}
	s.engine.ExecuteTurn()
	ctx.JSON(consts.StatusOK, s.engine.Snapshot())
}

func (s *Spectator) handleReset(_ context.Context, ctx *app.RequestContext) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.engine.Reset()
	ctx.JSON(consts.StatusOK, s.engine.Snapshot())
}

// Autoplay executes a tick every interval until the game ends or ctx is done.
func (s *Spectator) Autoplay(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("autoplay stopped")
			return
		case <-ticker.C:
			if !s.step() {
				log.Info().Msg("autoplay finished")
				return
			}
		}
	}
}

// step runs one tick and reports whether the game is still going.
func (s *Spectator) step() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.engine.ExecuteTurn()
	return s.engine.IsActive()
}
