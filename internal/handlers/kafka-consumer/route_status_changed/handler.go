package route_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"bidding/internal/entities"
	eventservice "bidding/internal/service/event"
	routeservice "bidding/internal/service/route"
	"bidding/pkg/logger"
)

type statusChangedEvent struct {
	RouteID string `json:"route_id"`
	Status  string `json:"status"`
}

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventService:             eventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("route.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("route.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("route.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("route", event.RouteID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("route.status.changed processing")

	status := entities.RouteStatusType(event.Status)
	routeModify := entities.RouteModify{
		ID:     &event.RouteID,
		Status: &status,
	}

	route, err := h.eventService.ProcessRouteStatusChange(ctx, routeModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("route.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, eventservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("route.status.changed handler unknown status for route")

		case errors.Is(err, routeservice.ErrRouteNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("route.status.changed handler route not found")

		case errors.Is(err, routeservice.ErrInvalidStatusTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("route.status.changed handler status transition rejected")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("route.status.changed handler failed to process route")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("route", route.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", route.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("route.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
