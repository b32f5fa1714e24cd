//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"bidding/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	GetByID(ctx context.Context, id string) (*entities.Route, error)
	UpdateStatusGuarded(ctx context.Context, id string, from, to entities.RouteStatusType) (bool, error)
}

type BidRepository interface {
	RejectPendingByRouteID(ctx context.Context, routeID string) (int64, error)
}

type WindowFactory interface {
	EndTime(departureTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
