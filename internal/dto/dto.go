package dto

import (
	"time"

	"bidding/internal/entities"
)

type Error struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Bid struct {
	ID                 string    `json:"id"`
	RouteID            string    `json:"routeId"`
	RequestID          string    `json:"requestId"`
	OfferedPrice       float64   `json:"offeredPrice"`
	Status             string    `json:"status"`
	Score              float64   `json:"score"`
	NormalizedPrice    float64   `json:"normalizedPrice"`
	NormalizedVolume   float64   `json:"normalizedVolume"`
	NormalizedDistance float64   `json:"normalizedDistance"`
	DetourPercentage   float64   `json:"detourPercentage"`
	WeightKg           float64   `json:"weightKg"`
	Volume             float64   `json:"volume"`
	Description        string    `json:"description"`
	PickupLocation     string    `json:"pickupLocation"`
	DeliveryLocation   string    `json:"deliveryLocation"`
	CustomerFirstName  string    `json:"customerFirstName"`
	CustomerLastName   string    `json:"customerLastName"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func BidFromEntity(b entities.Bid) Bid {
	return Bid{
		ID:                 b.ID,
		RouteID:            b.RouteID,
		RequestID:          b.RequestID,
		OfferedPrice:       b.OfferedPrice,
		Status:             b.Status.String(),
		Score:              b.Score,
		NormalizedPrice:    b.NormalizedPrice,
		NormalizedVolume:   b.NormalizedVolume,
		NormalizedDistance: b.NormalizedDistance,
		DetourPercentage:   b.DetourPercentage,
		WeightKg:           b.WeightKg,
		Volume:             b.VolumeM3,
		Description:        b.Description,
		PickupLocation:     b.PickupLocation,
		DeliveryLocation:   b.DeliveryLocation,
		CustomerFirstName:  b.CustomerFirstName,
		CustomerLastName:   b.CustomerLastName,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func BidsFromEntities(bids []entities.Bid) []Bid {
	out := make([]Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidFromEntity(b))
	}
	return out
}

type BidCreate struct {
	RequestID         string  `json:"requestId"`
	OfferedPrice      float64 `json:"offeredPrice"`
	WeightKg          float64 `json:"weightKg"`
	Volume            float64 `json:"volume"`
	PickupLat         float64 `json:"pickupLat"`
	PickupLng         float64 `json:"pickupLng"`
	DropoffLat        float64 `json:"dropoffLat"`
	DropoffLng        float64 `json:"dropoffLng"`
	PickupLocation    string  `json:"pickupLocation"`
	DeliveryLocation  string  `json:"deliveryLocation"`
	Description       string  `json:"description"`
	CustomerFirstName string  `json:"customerFirstName"`
	CustomerLastName  string  `json:"customerLastName"`
}

type BiddingStatus struct {
	DepartureTime       time.Time `json:"departureTime"`
	BiddingActive       bool      `json:"biddingActive"`
	BiddingEnded        bool      `json:"biddingEnded"`
	TimeUntilBiddingEnd float64   `json:"timeUntilBiddingEnd"`
	PendingBids         int64     `json:"pendingBids"`
	AcceptedBids        int64     `json:"acceptedBids"`
}

type RankedBidsResponse struct {
	RankedBids []Bid `json:"rankedBids"`
}

type OptimalBidsResponse struct {
	OptimalBids []Bid `json:"optimalBids"`
}

type Route struct {
	ID                string    `json:"id"`
	DriverID          string    `json:"driverId"`
	OriginLat         float64   `json:"originLat"`
	OriginLng         float64   `json:"originLng"`
	DestinationLat    float64   `json:"destinationLat"`
	DestinationLng    float64   `json:"destinationLng"`
	DepartureTime     time.Time `json:"departureTime"`
	BiddingStartTime  time.Time `json:"biddingStartTime"`
	DetourToleranceKm float64   `json:"detourToleranceKm"`
	SuggestedPriceMin float64   `json:"suggestedPriceMin"`
	SuggestedPriceMax float64   `json:"suggestedPriceMax"`
	CapacityWeightKg  float64   `json:"capacityWeightKg"`
	CapacityVolumeM3  float64   `json:"capacityVolumeM3"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func RouteFromEntity(r entities.Route) Route {
	return Route{
		ID:                r.ID,
		DriverID:          r.DriverID,
		OriginLat:         r.OriginLat,
		OriginLng:         r.OriginLng,
		DestinationLat:    r.DestinationLat,
		DestinationLng:    r.DestinationLng,
		DepartureTime:     r.DepartureTime,
		BiddingStartTime:  r.BiddingStartTime,
		DetourToleranceKm: r.DetourToleranceKm,
		SuggestedPriceMin: r.SuggestedPriceMin,
		SuggestedPriceMax: r.SuggestedPriceMax,
		CapacityWeightKg:  r.CapacityWeightKg,
		CapacityVolumeM3:  r.CapacityVolumeM3,
		Status:            r.Status.String(),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type RouteCreate struct {
	DriverID          string    `json:"driverId"`
	OriginLat         float64   `json:"originLat"`
	OriginLng         float64   `json:"originLng"`
	DestinationLat    float64   `json:"destinationLat"`
	DestinationLng    float64   `json:"destinationLng"`
	DepartureTime     time.Time `json:"departureTime"`
	BiddingStartTime  time.Time `json:"biddingStartTime"`
	DetourToleranceKm float64   `json:"detourToleranceKm"`
	SuggestedPriceMin float64   `json:"suggestedPriceMin"`
	SuggestedPriceMax float64   `json:"suggestedPriceMax"`
	CapacityWeightKg  *float64  `json:"capacityWeightKg,omitempty"`
	CapacityVolumeM3  *float64  `json:"capacityVolumeM3,omitempty"`
}

type RouteCreateResponse struct {
	ID string `json:"id"`
}
