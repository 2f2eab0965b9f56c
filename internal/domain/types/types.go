// Package types contains common types used across the application
package types

// Entry is one leaderboard row. ID and Name are nil when the spreadsheet row
// has no such cell, and are then left out of the JSON.
type Entry struct {
	ID     *string `json:"id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Points float64 `json:"points"`
}

// Text returns a pointer to s, for building entries.
func Text(s string) *string { return &s }
