package bidding

import (
	"bidding/internal/dto"
	"bidding/internal/entities"
)

func toDomainBid(b dto.Bid) entities.Bid {
	return entities.Bid{
		ID:                 b.ID,
		RouteID:            b.RouteID,
		RequestID:          b.RequestID,
		OfferedPrice:       b.OfferedPrice,
		WeightKg:           b.WeightKg,
		VolumeM3:           b.Volume,
		PickupLocation:     b.PickupLocation,
		DeliveryLocation:   b.DeliveryLocation,
		Description:        b.Description,
		CustomerFirstName:  b.CustomerFirstName,
		CustomerLastName:   b.CustomerLastName,
		Status:             entities.BidStatusType(b.Status),
		Score:              b.Score,
		NormalizedPrice:    b.NormalizedPrice,
		NormalizedVolume:   b.NormalizedVolume,
		NormalizedDistance: b.NormalizedDistance,
		DetourPercentage:   b.DetourPercentage,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toDomainBidList(bids []dto.Bid) []entities.Bid {
	result := make([]entities.Bid, 0, len(bids))
	for _, b := range bids {
		result = append(result, toDomainBid(b))
	}
	return result
}
