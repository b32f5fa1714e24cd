//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_test
package event

import (
	"context"

	"bidding/internal/entities"
)

type RouteRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Route, error)
}

type RouteService interface {
	CancelRoute(ctx context.Context, id string) error
	CompleteRoute(ctx context.Context, id string) error
}

type (
	ExecuteFn      func(ctx context.Context, routeID string) error
	HandlerFactory interface {
		GetHandler(status entities.RouteStatusType) (ExecuteFn, error)
	}
)
