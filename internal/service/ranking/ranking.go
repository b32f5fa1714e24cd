package ranking

import (
	"context"
	"fmt"

	"bidding/internal/entities"
)

type Ranking struct {
	routeRepository     RouteRepository
	bidRepository       BidRepository
	weights             Weights
	maxDetourPercentage float64
}

func New(
	routeRepository RouteRepository,
	bidRepository BidRepository,
	weights Weights,
	maxDetourPercentage float64,
) *Ranking {
	return &Ranking{
		routeRepository:     routeRepository,
		bidRepository:       bidRepository,
		weights:             weights,
		maxDetourPercentage: maxDetourPercentage,
	}
}

// RankedBids recomputes scores from the live bid set on every call, nothing
// is cached while the window is open. Never mutates bid status.
func (s *Ranking) RankedBids(ctx context.Context, routeID string) ([]entities.Bid, error) {
	route, err := s.routeRepository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	bids, err := s.bidRepository.ListByRouteID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}

	ranked := ScoreBids(*route, bids, s.weights, s.maxDetourPercentage)
	SortByScore(ranked)
	return ranked, nil
}
