package api

import (
	"errors"

	"github.com/okian/sheetboard/internal/adapters/sheets"
	service "github.com/okian/sheetboard/internal/app"
)

// errorKind labels a leaderboard failure for logs: config, network, parse,
// upstream_status or unknown.
func errorKind(err error) string {
	if errors.Is(err, service.ErrMissingConfig) || errors.Is(err, service.ErrNoReader) {
		return "config"
	}
	return sheets.KindOf(err).String()
}
