package bidding_status_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"bidding/internal/dto"
	"bidding/internal/service/bid"
	"bidding/internal/service/route"
	"bidding/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	routeID := mux.Vars(r)["routeId"]

	status, err := h.service.BiddingStatus(r.Context(), routeID)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, bid.ErrInvalidRouteID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	statusDTO := dto.BiddingStatus{
		DepartureTime:       status.DepartureTime,
		BiddingActive:       status.BiddingActive,
		BiddingEnded:        status.BiddingEnded,
		TimeUntilBiddingEnd: status.TimeUntilBiddingEnd,
		PendingBids:         status.PendingBids,
		AcceptedBids:        status.AcceptedBids,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(statusDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
