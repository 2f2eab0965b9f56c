// Package server assembles the leaderboard HTTP handler from configuration.
// It is shared by the long-running binary and the serverless entrypoint.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/sheetboard/internal/adapters/http/api"
	"github.com/okian/sheetboard/internal/adapters/http/site"
	"github.com/okian/sheetboard/internal/adapters/http/swagger"
	"github.com/okian/sheetboard/internal/adapters/sheets"
	service "github.com/okian/sheetboard/internal/app"
	"github.com/okian/sheetboard/internal/config"
	"github.com/okian/sheetboard/pkg/logger"
)

// Build wires the Sheets client, the service and every HTTP route. Missing
// credentials are logged and left for the handler to report per request.
func Build(ctx context.Context, cfg *config.Config) (http.Handler, *service.Service, error) {
	log := logger.Named("server")
	creds := cfg.Credentials()

	opts := []service.Option{
		service.WithCredentials(creds),
		service.WithUpstreamTimeout(cfg.UpstreamTimeout),
		service.WithLogger(logger.Named("service")),
	}

	if creds.Complete() {
		var clientOpts []sheets.Option
		if cfg.SheetsEndpoint != "" {
			clientOpts = append(clientOpts, sheets.WithEndpoint(cfg.SheetsEndpoint))
		}
		client, err := sheets.NewClient(ctx, creds.APIKey, clientOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("create sheets client: %w", err)
		}
		opts = append(opts, service.WithReader(client))
	} else {
		log.Warn(ctx, "spreadsheet credentials missing; leaderboard requests will fail",
			logger.Bool("sheet_id_set", creds.SheetID != ""),
			logger.Bool("api_key_set", creds.APIKey != ""),
		)
	}

	svc := service.New(opts...)

	mux := http.NewServeMux()
	site.Register(ctx, mux)
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc,
		api.WithLogger(logger.Named("api")),
		api.WithCORSOrigins(cfg.CORSAllowedOrigins),
	)
	apiServer.Register(ctx, mux)

	return apiServer.Wrap(mux), svc, nil
}
