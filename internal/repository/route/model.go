package route

import "time"

type RouteDB struct {
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
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RouteModifyDB struct {
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
	Status            *string
}
