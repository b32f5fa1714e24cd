package bidding_window

import (
	"time"

	"bidding/internal/entities"
)

// WindowFactory is the only place window state is derived from the clock.
// The window closes leadTime before departure; at the exact boundary the
// window counts as ended.
type WindowFactory struct {
	leadTime time.Duration
}

func New(leadTime time.Duration) *WindowFactory {
	return &WindowFactory{leadTime: leadTime}
}

func (f *WindowFactory) EndTime(departureTime time.Time) time.Time {
	return departureTime.Add(-f.leadTime)
}

func (f *WindowFactory) StateAt(route entities.Route, now time.Time) entities.BiddingWindowState {
	if !now.Before(f.EndTime(route.DepartureTime)) {
		return entities.BiddingEnded
	}
	if now.Before(route.BiddingStartTime) {
		return entities.BiddingNotStarted
	}
	return entities.BiddingActive
}

// DepartureCutoff returns the latest departure time whose window is already
// closed at the given instant.
func (f *WindowFactory) DepartureCutoff(now time.Time) time.Time {
	return now.Add(f.leadTime)
}

// TimeUntilEnd returns fractional minutes until window end, zero once ended.
func (f *WindowFactory) TimeUntilEnd(departureTime time.Time, now time.Time) float64 {
	remaining := f.EndTime(departureTime).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining.Minutes()
}
