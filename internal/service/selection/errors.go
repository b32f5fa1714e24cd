package selection

import "errors"

var (
	ErrInvalidRouteID  = errors.New("invalid route id")
	ErrBiddingNotEnded = errors.New("bidding has not ended")
)
