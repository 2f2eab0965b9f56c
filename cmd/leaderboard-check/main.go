package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/sheetboard/internal/checker"
	"github.com/okian/sheetboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultTopN      = 10
	defaultTimeout   = 10 * time.Second
	defaultRunLimit  = 5 * time.Minute
	defaultBaseURL   = "http://localhost:9080"
	defaultRequests  = 1
	defaultFetchPool = 1
)

func main() {
	var (
		baseURL  = flag.String("url", defaultBaseURL, "Base URL of the service")
		topN     = flag.Int("top", defaultTopN, "Number of top entries to log")
		requests = flag.Int("requests", defaultRequests, "Number of leaderboard fetches")
		workers  = flag.Int("workers", defaultFetchPool, "Number of concurrent fetchers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		checker.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	report, err := checker.Run(ctx, &checker.Config{
		BaseURL:  *baseURL,
		TopN:     *topN,
		Requests: *requests,
		Workers:  *workers,
		Timeout:  *timeout,
		Verbose:  *verbose,
	})
	if err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		if report != nil {
			os.Stderr.WriteString(report.String() + "\n")
		}
		cancel()
		os.Exit(1)
	}
}
