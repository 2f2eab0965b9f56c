// Package ranking turns spreadsheet rows into a sorted leaderboard.
package ranking

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/sheetboard/internal/domain/types"
)

// Positional columns of a leaderboard row.
const (
	colID = iota
	colName
	colPoints
)

// Build drops the header row, maps every remaining row to an Entry and sorts
// the result by points, highest first. Rows with equal points keep their
// spreadsheet order.
func Build(rows [][]string) []types.Entry {
	if len(rows) <= 1 {
		return []types.Entry{}
	}

	entries := make([]types.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entries = append(entries, fromRow(row))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries
}

func fromRow(row []string) types.Entry {
	var e types.Entry
	if len(row) > colID {
		e.ID = types.Text(row[colID])
	}
	if len(row) > colName {
		e.Name = types.Text(row[colName])
	}
	if len(row) > colPoints {
		e.Points = ParsePoints(row[colPoints])
	}
	return e
}

// ParsePoints coerces a cell to a number. Blank cells, unparsable text and
// non-finite values count as 0. Besides decimal and exponent notation it
// accepts 0x, 0o and 0b integer literals.
func ParsePoints(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}

	if f, ok := parseRadix(s); ok {
		if math.IsInf(f, 0) {
			return 0
		}
		return f
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// ParseFloat also takes "inf", "nan" and hex floats; only plain numbers count.
	if strings.ContainsAny(s, "_nNpPxX") {
		return 0
	}
	return f
}

func parseRadix(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
	default:
		return 0, false
	}
	if strings.Contains(s, "_") {
		return 0, false
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return 0, false
	}
	// Literals beyond float64 range round to +Inf, which ParsePoints rejects.
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

// IsSorted reports whether entries are ordered by points, highest first.
func IsSorted(entries []types.Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Points > entries[i-1].Points {
			return false
		}
	}
	return true
}
