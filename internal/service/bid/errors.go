package bid

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBidID          = errors.New("invalid bid id")
	ErrInvalidRouteID        = errors.New("invalid route id")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidPrice          = errors.New("invalid offered price")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidVolume         = errors.New("invalid volume")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrBidNotFound            = errors.New("bid not found")
	ErrRequestAlreadyAccepted = errors.New("request already has an accepted bid")

	ErrBiddingNotStarted = errors.New("bidding has not started")
	ErrBiddingEnded      = errors.New("bidding has ended")
	ErrRouteCancelled    = errors.New("route is cancelled")
)
