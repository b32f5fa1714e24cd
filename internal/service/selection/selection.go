package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"bidding/internal/entities"
)

type Selection struct {
	routeRepository RouteRepository
	bidRepository   BidRepository
	ranker          Ranker
	windowFactory   WindowFactory
	txManager       TxManager
}

func New(
	routeRepository RouteRepository,
	bidRepository BidRepository,
	ranker Ranker,
	windowFactory WindowFactory,
	txManager TxManager,
) *Selection {
	return &Selection{
		routeRepository: routeRepository,
		bidRepository:   bidRepository,
		ranker:          ranker,
		windowFactory:   windowFactory,
		txManager:       txManager,
	}
}

// FinalizeRoute закрывает торги по маршруту ровно один раз: победители
// становятся accepted, остальные pending ставки rejected. Повторный вызов
// и конкурентный запуск гасятся переводом статуса маршрута open -> closed.
func (s *Selection) FinalizeRoute(ctx context.Context, routeID string) error {
	if strings.TrimSpace(routeID) == "" {
		return ErrInvalidRouteID
	}

	route, err := s.routeRepository.GetByID(ctx, routeID)
	if err != nil {
		return fmt.Errorf("get route: %w", err)
	}

	if s.windowFactory.StateAt(*route, time.Now().UTC()) != entities.BiddingEnded {
		return ErrBiddingNotEnded
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		closed, err := s.routeRepository.CloseIfOpen(ctx, routeID)
		if err != nil {
			return fmt.Errorf("close route: %w", err)
		}
		if !closed {
			// уже финализирован или отменен
			return nil
		}

		ranked, err := s.ranker.RankedBids(ctx, routeID)
		if err != nil {
			return fmt.Errorf("rank bids: %w", err)
		}

		pending := make([]entities.Bid, 0, len(ranked))
		for _, b := range ranked {
			if b.Status == entities.BidPending {
				pending = append(pending, b)
			}
		}

		winners := selectWinners(*route, pending)
		for _, w := range winners {
			_, err := s.bidRepository.Update(ctx, entities.BidModify{
				ID:                 pointer.To(w.ID),
				Status:             pointer.To(entities.BidAccepted),
				Score:              pointer.To(w.Score),
				NormalizedPrice:    pointer.To(w.NormalizedPrice),
				NormalizedVolume:   pointer.To(w.NormalizedVolume),
				NormalizedDistance: pointer.To(w.NormalizedDistance),
				DetourPercentage:   pointer.To(w.DetourPercentage),
			})
			if err != nil {
				return fmt.Errorf("accept bid %s: %w", w.ID, err)
			}
		}

		_, err = s.bidRepository.RejectPendingByRouteID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("reject losing bids: %w", err)
		}
		return nil
	})
}

// FinalizeDueRoutes finalizes every open route whose window already closed.
func (s *Selection) FinalizeDueRoutes(ctx context.Context) (int64, error) {
	cutoff := s.windowFactory.DepartureCutoff(time.Now().UTC())

	ids, err := s.routeRepository.GetOpenRouteIDsDepartingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list due routes: %w", err)
	}

	var finalized int64
	var errs []error
	for _, id := range ids {
		if err := s.FinalizeRoute(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("finalize route %s: %w", id, err))
			continue
		}
		finalized++
	}

	return finalized, errors.Join(errs...)
}

// OptimalBids returns the accepted set once the window has ended. A still
// open route is finalized lazily first, so winners are visible even if the
// background task lags.
func (s *Selection) OptimalBids(ctx context.Context, routeID string) ([]entities.Bid, error) {
	if strings.TrimSpace(routeID) == "" {
		return nil, ErrInvalidRouteID
	}

	route, err := s.routeRepository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	if s.windowFactory.StateAt(*route, time.Now().UTC()) != entities.BiddingEnded {
		return nil, ErrBiddingNotEnded
	}

	if route.Status == entities.RouteOpen {
		if err := s.FinalizeRoute(ctx, routeID); err != nil {
			return nil, fmt.Errorf("lazy finalize: %w", err)
		}
	}

	accepted, err := s.bidRepository.ListByRouteIDAndStatus(ctx, routeID, entities.BidAccepted)
	if err != nil {
		return nil, fmt.Errorf("list accepted bids: %w", err)
	}

	return accepted, nil
}
