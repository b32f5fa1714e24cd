package route

import (
	"bidding/internal/entities"
)

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	return &entities.Route{
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
		Status:            entities.RouteStatusType(r.Status),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromDomainModify(routeModify *entities.RouteModify) *RouteModifyDB {
	if routeModify == nil {
		return nil
	}
	routeDB := &RouteModifyDB{
		ID:                routeModify.ID,
		DriverID:          routeModify.DriverID,
		OriginLat:         routeModify.OriginLat,
		OriginLng:         routeModify.OriginLng,
		DestinationLat:    routeModify.DestinationLat,
		DestinationLng:    routeModify.DestinationLng,
		DepartureTime:     routeModify.DepartureTime,
		BiddingStartTime:  routeModify.BiddingStartTime,
		DetourToleranceKm: routeModify.DetourToleranceKm,
		SuggestedPriceMin: routeModify.SuggestedPriceMin,
		SuggestedPriceMax: routeModify.SuggestedPriceMax,
		CapacityWeightKg:  routeModify.CapacityWeightKg,
		CapacityVolumeM3:  routeModify.CapacityVolumeM3,
	}

	if routeModify.Status != nil {
		status := routeModify.Status.String()
		routeDB.Status = &status
	}

	return routeDB
}
