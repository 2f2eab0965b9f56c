// Package service provides the leaderboard service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/sheetboard/internal/adapters/sheets"
	"github.com/okian/sheetboard/internal/config"
	"github.com/okian/sheetboard/internal/domain/ranking"
	"github.com/okian/sheetboard/internal/domain/types"
	"github.com/okian/sheetboard/pkg/logger"
	"github.com/okian/sheetboard/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service reads the leaderboard sheet and ranks it. It holds no per-request
// state; counters are for /stats only.
type Service struct {
	reader          sheets.ValuesReader
	creds           config.Credentials
	upstreamTimeout time.Duration
	logger          logger.Logger

	requests    atomic.Int64
	failures    atomic.Int64
	lastEntries atomic.Int64
	lastSuccess atomic.Int64 // unix nanoseconds

	mu             sync.Mutex
	failuresByKind map[string]int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithReader sets the values reader used to fetch the sheet.
func WithReader(r sheets.ValuesReader) Option {
	return func(s *Service) {
		s.reader = r
	}
}

// WithCredentials sets the spreadsheet id and api key.
func WithCredentials(c config.Credentials) Option {
	return func(s *Service) {
		s.creds = c
	}
}

// WithUpstreamTimeout bounds each upstream call. Zero means no bound.
func WithUpstreamTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.upstreamTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service.
func New(opts ...Option) *Service {
	s := &Service{
		failuresByKind: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// Configured reports whether both credentials are present.
func (s *Service) Configured() bool {
	return s.creds.Complete()
}

// Leaderboard fetches the fixed range of the configured sheet and returns its
// rows ranked by points. It fails with ErrMissingConfig, without calling the
// reader, when credentials are incomplete.
func (s *Service) Leaderboard(ctx context.Context) ([]types.Entry, error) {
	s.requests.Add(1)

	if !s.creds.Complete() {
		metrics.RecordConfigError()
		s.recordFailure("config")
		return nil, ErrMissingConfig
	}
	if s.reader == nil {
		s.recordFailure("config")
		return nil, ErrNoReader
	}

	if s.upstreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.upstreamTimeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := s.reader.ReadValues(ctx, s.creds.SheetID, sheets.DefaultRange)
	latencyMs := float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond
	if err != nil {
		kind := sheets.KindOf(err).String()
		metrics.RecordSheetsFetch(metrics.OutcomeError, latencyMs)
		metrics.RecordSheetsError(kind)
		s.recordFailure(kind)
		s.logger.Debug(ctx, "sheets read failed",
			logger.String("kind", kind),
			logger.Float64("latency_ms", latencyMs),
			logger.Error(err),
		)
		return nil, err
	}
	metrics.RecordSheetsFetch(metrics.OutcomeSuccess, latencyMs)

	entries := ranking.Build(rows)
	metrics.UpdateLeaderboardEntries(len(entries))
	s.lastEntries.Store(int64(len(entries)))
	s.lastSuccess.Store(time.Now().UnixNano())

	s.logger.Debug(ctx, "leaderboard built",
		logger.Int("rows", len(rows)),
		logger.Int("entries", len(entries)),
		logger.Float64("latency_ms", latencyMs),
	)
	return entries, nil
}

func (s *Service) recordFailure(kind string) {
	s.failures.Add(1)
	s.mu.Lock()
	s.failuresByKind[kind]++
	s.mu.Unlock()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	byKind := make(map[string]int64, len(s.failuresByKind))
	for k, v := range s.failuresByKind {
		byKind[k] = v
	}
	s.mu.Unlock()

	stats := map[string]interface{}{
		"configured":     s.creds.Complete(),
		"range":          sheets.DefaultRange,
		"requests":       s.requests.Load(),
		"failures":       s.failures.Load(),
		"failuresByKind": byKind,
		"lastEntries":    s.lastEntries.Load(),
		"lastSuccessAt":  "",
	}
	if ns := s.lastSuccess.Load(); ns > 0 {
		stats["lastSuccessAt"] = time.Unix(0, ns).UTC().Format(time.RFC3339)
	}
	return stats
}
