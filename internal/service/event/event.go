package event

import (
	"context"
	"errors"
	"fmt"

	"bidding/internal/entities"
)

// Service applies route status change events published by the delivery
// subsystem to local route state.
type Service struct {
	routeRepository RouteRepository
	statusFactory   HandlerFactory
}

func New(routeRepository RouteRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		routeRepository: routeRepository,
		statusFactory:   statusFactory,
	}
}

func (s *Service) ProcessRouteStatusChange(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	if routeModify.ID == nil || routeModify.Status == nil {
		return nil, fmt.Errorf("route id and status are required")
	}

	route, err := s.routeRepository.GetByID(ctx, *routeModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*routeModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return route, nil
		}
		return route, err
	}

	if err := executeFn(ctx, route.ID); err != nil {
		return nil, err
	}

	return route, nil
}
