package entities

import (
	"time"
)

type Route struct {
	ID                string
	DriverID          string
	OriginLat         float64
	OriginLng         float64
	DestinationLat    float64
	DestinationLng    float64
	DepartureTime     time.Time
	BiddingStartTime  time.Time
	DetourToleranceKm float64
	SuggestedPriceMin float64
	SuggestedPriceMax float64
	CapacityWeightKg  float64
	CapacityVolumeM3  float64
	Status            RouteStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RouteStatusType string

const (
	RouteOpen      RouteStatusType = "open"
	RouteClosed    RouteStatusType = "closed"
	RouteCancelled RouteStatusType = "cancelled"
	RouteCompleted RouteStatusType = "completed"
)

func (t RouteStatusType) String() string {
	return string(t)
}

// HasCapacity reports whether the driver declared at least one capacity
// dimension. Zero values mean "undeclared".
func (r Route) HasCapacity() bool {
	return r.CapacityWeightKg > 0 || r.CapacityVolumeM3 > 0
}

type RouteModify struct {
	ID                *string
	DriverID          *string
	OriginLat         *float64
	OriginLng         *float64
	DestinationLat    *float64
	DestinationLng    *float64
	DepartureTime     *time.Time
	BiddingStartTime  *time.Time
	DetourToleranceKm *float64
	SuggestedPriceMin *float64
	SuggestedPriceMax *float64
	CapacityWeightKg  *float64
	CapacityVolumeM3  *float64
	Status            *RouteStatusType
}
