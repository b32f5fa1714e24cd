package bid

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"bidding/internal/entities"
)

type Bid struct {
	repository      Repository
	routeRepository RouteRepository
	windowFactory   WindowFactory
}

func New(
	repository Repository,
	routeRepository RouteRepository,
	windowFactory WindowFactory,
) *Bid {
	return &Bid{
		repository:      repository,
		routeRepository: routeRepository,
		windowFactory:   windowFactory,
	}
}

// SubmitBid создает ставку только пока окно торгов активно, вне окна
// запись не создается.
func (s *Bid) SubmitBid(ctx context.Context, bidEntity entities.Bid) (*entities.Bid, error) {
	if !isValidID(bidEntity.RouteID) {
		return nil, ErrInvalidRouteID
	}
	if !isValidID(bidEntity.RequestID) {
		return nil, ErrInvalidRequestID
	}
	if bidEntity.OfferedPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if bidEntity.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if bidEntity.VolumeM3 <= 0 {
		return nil, ErrInvalidVolume
	}
	if !isValidCoordinates(bidEntity.PickupLat, bidEntity.PickupLng) ||
		!isValidCoordinates(bidEntity.DropoffLat, bidEntity.DropoffLng) {
		return nil, ErrInvalidCoordinates
	}

	route, err := s.routeRepository.GetByID(ctx, bidEntity.RouteID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	if route.Status == entities.RouteCancelled {
		return nil, ErrRouteCancelled
	}
	if route.Status != entities.RouteOpen {
		return nil, ErrBiddingEnded
	}

	switch s.windowFactory.StateAt(*route, time.Now().UTC()) {
	case entities.BiddingNotStarted:
		return nil, ErrBiddingNotStarted
	case entities.BiddingEnded:
		return nil, ErrBiddingEnded
	case entities.BiddingActive:
	}

	bidEntity.ID = uuid.NewString()
	bidEntity.Status = entities.BidPending

	created, err := s.repository.Create(ctx, bidEntity)
	if err != nil {
		return nil, fmt.Errorf("create bid: %w", err)
	}

	return created, nil
}

func (s *Bid) GetBid(ctx context.Context, id string) (*entities.Bid, error) {
	if !isValidID(id) {
		return nil, ErrInvalidBidID
	}

	bidEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bid: %w", err)
	}

	return bidEntity, nil
}

// BiddingStatus выводится из маршрута и текущего времени на каждый запрос,
// состояние окна нигде не хранится.
func (s *Bid) BiddingStatus(ctx context.Context, routeID string) (*entities.BiddingStatus, error) {
	if !isValidID(routeID) {
		return nil, ErrInvalidRouteID
	}

	route, err := s.routeRepository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	pending, accepted, err := s.repository.CountByRouteID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("count bids: %w", err)
	}

	now := time.Now().UTC()
	state := s.windowFactory.StateAt(*route, now)

	return &entities.BiddingStatus{
		RouteID:             route.ID,
		DepartureTime:       route.DepartureTime,
		BiddingEndTime:      s.windowFactory.EndTime(route.DepartureTime),
		BiddingActive:       state == entities.BiddingActive,
		BiddingEnded:        state == entities.BiddingEnded,
		TimeUntilBiddingEnd: s.windowFactory.TimeUntilEnd(route.DepartureTime, now),
		PendingBids:         pending,
		AcceptedBids:        accepted,
	}, nil
}
