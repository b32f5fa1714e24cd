package optimal_bids_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"bidding/internal/dto"
	"bidding/internal/service/route"
	"bidding/internal/service/selection"
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

	optimal, err := h.service.OptimalBids(r.Context(), routeID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrBiddingNotEnded):
			h.writeError(w, http.StatusConflict, selection.ErrBiddingNotEnded.Error())
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, selection.ErrInvalidRouteID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OptimalBidsResponse{
		OptimalBids: dto.BidsFromEntities(optimal),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.Error{Error: msg})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
