package entities

import (
	"time"
)

type Bid struct {
	ID                string
	RouteID           string
	RequestID         string
	OfferedPrice      float64
	WeightKg          float64
	VolumeM3          float64
	PickupLat         float64
	PickupLng         float64
	DropoffLat        float64
	DropoffLng        float64
	PickupLocation    string
	DeliveryLocation  string
	Description       string
	CustomerFirstName string
	CustomerLastName  string
	Status            BidStatusType

	// Derived ranking metrics. Recomputed from the live bid set while
	// bidding is open, persisted only at finalization.
	Score              float64
	NormalizedPrice    float64
	NormalizedVolume   float64
	NormalizedDistance float64
	DetourPercentage   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BidStatusType string

const (
	BidPending  BidStatusType = "pending"
	BidAccepted BidStatusType = "accepted"
	BidRejected BidStatusType = "rejected"
)

func (t BidStatusType) String() string {
	return string(t)
}

type BidModify struct {
	ID                 *string
	Status             *BidStatusType
	Score              *float64
	NormalizedPrice    *float64
	NormalizedVolume   *float64
	NormalizedDistance *float64
	DetourPercentage   *float64
}
