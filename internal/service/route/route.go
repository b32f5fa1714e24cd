package route

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"bidding/internal/entities"
)

type Route struct {
	repository    Repository
	bidRepository BidRepository
	windowFactory WindowFactory
	txManager     TxManager
}

func New(
	repository Repository,
	bidRepository BidRepository,
	windowFactory WindowFactory,
	txManager TxManager,
) *Route {
	return &Route{
		repository:    repository,
		bidRepository: bidRepository,
		windowFactory: windowFactory,
		txManager:     txManager,
	}
}

func (s *Route) CreateRoute(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	if routeModify.DriverID == nil ||
		routeModify.OriginLat == nil ||
		routeModify.OriginLng == nil ||
		routeModify.DestinationLat == nil ||
		routeModify.DestinationLng == nil ||
		routeModify.DepartureTime == nil ||
		routeModify.BiddingStartTime == nil ||
		routeModify.DetourToleranceKm == nil ||
		routeModify.SuggestedPriceMin == nil ||
		routeModify.SuggestedPriceMax == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCoordinates(*routeModify.OriginLat, *routeModify.OriginLng) ||
		!isValidCoordinates(*routeModify.DestinationLat, *routeModify.DestinationLng) {
		return nil, ErrInvalidCoordinates
	}

	// biddingStart < biddingEnd < departure, biddingEnd закрывается за
	// lead time до отправления
	biddingEnd := s.windowFactory.EndTime(*routeModify.DepartureTime)
	if !routeModify.BiddingStartTime.Before(biddingEnd) {
		return nil, ErrInvalidSchedule
	}

	if *routeModify.SuggestedPriceMin <= 0 || *routeModify.SuggestedPriceMax < *routeModify.SuggestedPriceMin {
		return nil, ErrInvalidPriceRange
	}
	if *routeModify.DetourToleranceKm <= 0 {
		return nil, ErrInvalidDetourTolerance
	}
	if routeModify.CapacityWeightKg != nil && *routeModify.CapacityWeightKg < 0 {
		return nil, ErrInvalidCapacity
	}
	if routeModify.CapacityVolumeM3 != nil && *routeModify.CapacityVolumeM3 < 0 {
		return nil, ErrInvalidCapacity
	}

	// незаявленная вместимость хранится нулем
	if routeModify.CapacityWeightKg == nil {
		routeModify.CapacityWeightKg = pointer.To(0.0)
	}
	if routeModify.CapacityVolumeM3 == nil {
		routeModify.CapacityVolumeM3 = pointer.To(0.0)
	}

	id := uuid.NewString()
	status := entities.RouteOpen
	routeModify.ID = &id
	routeModify.Status = &status

	route, err := s.repository.Create(ctx, routeModify)
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	return route, nil
}

func (s *Route) GetRoute(ctx context.Context, id string) (*entities.Route, error) {
	if !isValidRouteID(id) {
		return nil, ErrInvalidRouteID
	}

	route, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	return route, nil
}

// CancelRoute переводит open маршрут в cancelled и отклоняет все
// нерассмотренные ставки в одной транзакции.
func (s *Route) CancelRoute(ctx context.Context, id string) error {
	if !isValidRouteID(id) {
		return ErrInvalidRouteID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err := s.repository.UpdateStatusGuarded(ctx, id, entities.RouteOpen, entities.RouteCancelled)
		if err != nil {
			return fmt.Errorf("cancel route: %w", err)
		}
		if !cancelled {
			return s.explainGuardFailure(ctx, id)
		}

		_, err = s.bidRepository.RejectPendingByRouteID(ctx, id)
		if err != nil {
			return fmt.Errorf("reject pending bids: %w", err)
		}
		return nil
	})
}

func (s *Route) CompleteRoute(ctx context.Context, id string) error {
	if !isValidRouteID(id) {
		return ErrInvalidRouteID
	}

	completed, err := s.repository.UpdateStatusGuarded(ctx, id, entities.RouteClosed, entities.RouteCompleted)
	if err != nil {
		return fmt.Errorf("complete route: %w", err)
	}
	if !completed {
		return s.explainGuardFailure(ctx, id)
	}
	return nil
}

func (s *Route) explainGuardFailure(ctx context.Context, id string) error {
	_, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get route: %w", err)
	}
	return ErrInvalidStatusTransition
}
