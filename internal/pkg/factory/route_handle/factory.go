package route_handle

import (
	"context"
	"fmt"

	"bidding/internal/entities"
	"bidding/internal/service/event"
)

type StatusHandlerFactory struct {
	routeService event.RouteService
}

func NewStatusHandlerFactory(routeService event.RouteService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		routeService: routeService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.RouteStatusType) (event.ExecuteFn, error) {
	switch status {
	case entities.RouteCancelled:
		return f.cancelledHandler, nil
	case entities.RouteCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", event.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, routeID string) error {
	err := f.routeService.CancelRoute(ctx, routeID)
	if err != nil {
		return fmt.Errorf("cancel route %s: %w", routeID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, routeID string) error {
	err := f.routeService.CompleteRoute(ctx, routeID)
	if err != nil {
		return fmt.Errorf("complete route %s: %w", routeID, err)
	}
	return nil
}
