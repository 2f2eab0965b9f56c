// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/sheetboard/pkg/logger"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context) ([]Entry, error)
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps   LeaderboardDependencies
	logger logger.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies, l logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps, logger: l}
}

// HandleGetLeaderboard serves /api/leaderboard. Method, query and body are
// ignored. Every failure is a 500 with a flat {"error": message} body.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	ctx := r.Context()

	entries, err := h.deps.Leaderboard(ctx)
	if err != nil {
		kind := errorKind(err)
		fields := []logger.Field{
			logger.String("op", op),
			logger.String("kind", kind),
			logger.String("request_id", RequestIDFromContext(ctx)),
			logger.Error(err),
		}
		if kind == "config" {
			h.logger.Warn(ctx, "leaderboard credentials missing", fields...)
		} else {
			h.logger.Error(ctx, "leaderboard request failed", fields...)
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
