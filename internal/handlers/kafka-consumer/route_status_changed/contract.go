package route_status_changed

import (
	"context"

	"bidding/internal/entities"
	"bidding/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessRouteStatusChange(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
}
