package checker

import "os"

// ShowHelp prints usage information for the checker.
func ShowHelp() {
	os.Stdout.WriteString(`Sheetboard Leaderboard Check
============================

Fetches /api/leaderboard from a running service and verifies the response.

Usage:
  go run ./cmd/leaderboard-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -top int
        Number of top entries to log (default 10)
  -requests int
        Number of leaderboard fetches (default 1)
  -workers int
        Number of concurrent fetchers (default 1)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Check a local server
  go run ./cmd/leaderboard-check

  # Check a deployment under light concurrent load
  go run ./cmd/leaderboard-check -url https://board.example.com -requests 50 -workers 8
`)
}
