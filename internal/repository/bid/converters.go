package bid

import (
	"bidding/internal/entities"
)

func ToDomain(b *BidDB) *entities.Bid {
	if b == nil {
		return nil
	}

	return &entities.Bid{
		ID:                 b.ID,
		RouteID:            b.RouteID,
		RequestID:          b.RequestID,
		OfferedPrice:       b.OfferedPrice,
		WeightKg:           b.WeightKg,
		VolumeM3:           b.VolumeM3,
		PickupLat:          b.PickupLat,
		PickupLng:          b.PickupLng,
		DropoffLat:         b.DropoffLat,
		DropoffLng:         b.DropoffLng,
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

func FromDomain(b *entities.Bid) *BidDB {
	if b == nil {
		return nil
	}

	return &BidDB{
		ID:                b.ID,
		RouteID:           b.RouteID,
		RequestID:         b.RequestID,
		OfferedPrice:      b.OfferedPrice,
		WeightKg:          b.WeightKg,
		VolumeM3:          b.VolumeM3,
		PickupLat:         b.PickupLat,
		PickupLng:         b.PickupLng,
		DropoffLat:        b.DropoffLat,
		DropoffLng:        b.DropoffLng,
		PickupLocation:    b.PickupLocation,
		DeliveryLocation:  b.DeliveryLocation,
		Description:       b.Description,
		CustomerFirstName: b.CustomerFirstName,
		CustomerLastName:  b.CustomerLastName,
		Status:            b.Status.String(),
	}
}

func FromDomainModify(bidModify *entities.BidModify) *BidModifyDB {
	if bidModify == nil {
		return nil
	}
	bidDB := &BidModifyDB{
		ID:                 bidModify.ID,
		Score:              bidModify.Score,
		NormalizedPrice:    bidModify.NormalizedPrice,
		NormalizedVolume:   bidModify.NormalizedVolume,
		NormalizedDistance: bidModify.NormalizedDistance,
		DetourPercentage:   bidModify.DetourPercentage,
	}

	if bidModify.Status != nil {
		status := bidModify.Status.String()
		bidDB.Status = &status
	}

	return bidDB
}

func ToDomainList(bidsDB []BidDB) []entities.Bid {
	if len(bidsDB) == 0 {
		return []entities.Bid{}
	}

	result := make([]entities.Bid, len(bidsDB))
	for i, bidDB := range bidsDB {
		result[i] = *ToDomain(&bidDB)
	}
	return result
}
