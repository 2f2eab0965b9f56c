package checker

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/okian/sheetboard/pkg/logger"
)

// Run fetches the leaderboard cfg.Requests times with cfg.Workers
// concurrent fetchers, then verifies that the first response is sorted and
// that every response matches it.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	log := logger.Named("checker")
	if cfg.Requests < 1 {
		cfg.Requests = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	report := &Report{Requests: cfg.Requests, StartTime: time.Now()}
	client := newHTTPClient(cfg.Timeout)

	var (
		mu      sync.Mutex
		first   *fetchResult
		lastErr error
		wg      sync.WaitGroup
	)

	jobs := make(chan int, cfg.Workers*2)
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := client.FetchLeaderboard(ctx, cfg.BaseURL)

				mu.Lock()
				switch {
				case err != nil:
					report.Failed++
					lastErr = err
				case first == nil:
					report.Successful++
					first = res
				default:
					report.Successful++
					if !bytes.Equal(first.body, res.body) {
						report.Mismatched++
					}
				}
				mu.Unlock()

				if err != nil {
					log.Warn(ctx, "leaderboard request failed", logger.Int("request", i), logger.Error(err))
				} else if cfg.Verbose {
					log.Debug(ctx, "leaderboard fetched",
						logger.Int("request", i),
						logger.Int("entries", len(res.entries)),
						logger.Duration("elapsed", res.elapsed),
					)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Wait()
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	if first == nil {
		if lastErr != nil {
			return report, lastErr
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		return report, ErrAllFailed
	}

	if err := verifyEntries(first.entries, report); err != nil {
		return report, err
	}
	displayTop(ctx, log, first.entries, cfg.TopN)
	log.Info(ctx, "leaderboard check completed",
		logger.Int("requests", report.Requests),
		logger.Int("successful", report.Successful),
		logger.Int("failed", report.Failed),
		logger.Int("mismatched", report.Mismatched),
		logger.Int("entries", report.Entries),
		logger.Float64("top_points", report.TopPoints),
		logger.Float64("mean_points", report.MeanPoints),
		logger.Duration("duration", report.Duration),
	)

	if report.Mismatched > 0 {
		return report, ErrInconsistent
	}
	if report.Failed > 0 {
		return report, lastErr
	}
	return report, nil
}
