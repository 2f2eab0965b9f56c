package checker

import (
	"context"
	"fmt"

	"github.com/okian/sheetboard/internal/domain/ranking"
	"github.com/okian/sheetboard/pkg/logger"
)

// verifyEntries checks ordering and fills the point statistics of r.
func verifyEntries(entries []Entry, r *Report) error {
	if !ranking.IsSorted(entries) {
		return ErrNotSorted
	}

	r.Entries = len(entries)
	r.TotalPoints = 0
	for _, e := range entries {
		r.TotalPoints += e.Points
	}
	if len(entries) > 0 {
		r.TopPoints = entries[0].Points
		r.MeanPoints = r.TotalPoints / float64(len(entries))
	}
	return nil
}

// displayTop logs the first n entries.
func displayTop(ctx context.Context, log logger.Logger, entries []Entry, n int) {
	if n > len(entries) {
		n = len(entries)
	}
	for i := 0; i < n; i++ {
		e := entries[i]
		log.Info(ctx, "entry",
			logger.Int("position", i+1),
			logger.String("id", deref(e.ID)),
			logger.String("name", deref(e.Name)),
			logger.Float64("points", e.Points),
		)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *Report) String() string {
	return fmt.Sprintf("requests=%d ok=%d failed=%d mismatched=%d entries=%d top=%g mean=%g duration=%s",
		r.Requests, r.Successful, r.Failed, r.Mismatched, r.Entries, r.TopPoints, r.MeanPoints, r.Duration)
}
