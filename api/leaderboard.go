// Package handler is the serverless entrypoint for the leaderboard. The
// platform invokes Handler for requests routed to /api/leaderboard.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/okian/sheetboard/internal/config"
	"github.com/okian/sheetboard/internal/server"
	"github.com/okian/sheetboard/pkg/logger"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error

	logOutput io.Writer = os.Stdout
)

func setup() {
	ctx := context.Background()
	if initErr = logger.Init(logger.WithWriter(logOutput), logger.WithFormat(logger.FormatJSON)); initErr != nil {
		return
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		initErr = err
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	app, _, initErr = server.Build(ctx, cfg)
}

// Handler serves one leaderboard request, building the handler chain on
// first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": initErr.Error()})
		return
	}
	app.ServeHTTP(w, r)
}
