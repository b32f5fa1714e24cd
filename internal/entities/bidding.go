package entities

import "time"

// BiddingStatus is derived from the route and the wall clock on every
// request, it is never persisted.
type BiddingStatus struct {
	RouteID             string
	DepartureTime       time.Time
	BiddingEndTime      time.Time
	BiddingActive       bool
	BiddingEnded        bool
	TimeUntilBiddingEnd float64
	PendingBids         int64
	AcceptedBids        int64
}

type BiddingWindowState string

const (
	BiddingNotStarted BiddingWindowState = "not_started"
	BiddingActive     BiddingWindowState = "active"
	BiddingEnded      BiddingWindowState = "ended"
)

func (s BiddingWindowState) String() string {
	return string(s)
}
