//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_test
package bid

import (
	"context"
	"time"

	"bidding/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bid entities.Bid) (*entities.Bid, error)
	GetByID(ctx context.Context, id string) (*entities.Bid, error)
	CountByRouteID(ctx context.Context, routeID string) (pending, accepted int64, err error)
}

type RouteRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Route, error)
}

type WindowFactory interface {
	StateAt(route entities.Route, now time.Time) entities.BiddingWindowState
	EndTime(departureTime time.Time) time.Time
	TimeUntilEnd(departureTime time.Time, now time.Time) float64
}
