package checker

import (
	"time"

	"github.com/okian/sheetboard/internal/domain/types"
)

// Config holds configuration for a check run.
type Config struct {
	BaseURL  string        // Base URL of the service
	TopN     int           // Number of top entries to log
	Requests int           // Number of leaderboard fetches
	Workers  int           // Number of concurrent fetchers
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log every entry and response
}

// Entry is a leaderboard entry as served by the API.
type Entry = types.Entry

// Report summarizes a check run.
type Report struct {
	Requests    int
	Successful  int
	Failed      int
	Mismatched  int // responses that differ from the first successful one
	Entries     int
	TopPoints   float64
	TotalPoints float64
	MeanPoints  float64
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}
