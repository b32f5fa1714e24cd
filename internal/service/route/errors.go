package route

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidRouteID         = errors.New("invalid route id")
	ErrInvalidCoordinates     = errors.New("invalid coordinates")
	ErrInvalidSchedule        = errors.New("bidding must start before the bidding window closes")
	ErrInvalidPriceRange      = errors.New("invalid suggested price range")
	ErrInvalidDetourTolerance = errors.New("invalid detour tolerance")
	ErrInvalidCapacity        = errors.New("invalid capacity")

	ErrRouteNotFound           = errors.New("route not found")
	ErrInvalidStatusTransition = errors.New("invalid route status transition")
)
