package bid

import "time"

type BidDB struct {
	ID                 string
	RouteID            string
	RequestID          string
	OfferedPrice       float64
	WeightKg           float64
	VolumeM3           float64
	PickupLat          float64
	PickupLng          float64
	DropoffLat         float64
	DropoffLng         float64
	PickupLocation     string
	DeliveryLocation   string
	Description        string
	CustomerFirstName  string
	CustomerLastName   string
	Status             string
	Score              float64
	NormalizedPrice    float64
	NormalizedVolume   float64
	NormalizedDistance float64
	DetourPercentage   float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BidModifyDB struct {
	ID                 *string
	Status             *string
	Score              *float64
	NormalizedPrice    *float64
	NormalizedVolume   *float64
	NormalizedDistance *float64
	DetourPercentage   *float64
}
