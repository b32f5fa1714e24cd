package bid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"bidding/internal/dto"
	"bidding/internal/entities"
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

	var bidCreateDTO dto.BidCreate
	err := json.NewDecoder(r.Body).Decode(&bidCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bidEntity := entities.Bid{
		RouteID:           routeID,
		RequestID:         bidCreateDTO.RequestID,
		OfferedPrice:      bidCreateDTO.OfferedPrice,
		WeightKg:          bidCreateDTO.WeightKg,
		VolumeM3:          bidCreateDTO.Volume,
		PickupLat:         bidCreateDTO.PickupLat,
		PickupLng:         bidCreateDTO.PickupLng,
		DropoffLat:        bidCreateDTO.DropoffLat,
		DropoffLng:        bidCreateDTO.DropoffLng,
		PickupLocation:    bidCreateDTO.PickupLocation,
		DeliveryLocation:  bidCreateDTO.DeliveryLocation,
		Description:       bidCreateDTO.Description,
		CustomerFirstName: bidCreateDTO.CustomerFirstName,
		CustomerLastName:  bidCreateDTO.CustomerLastName,
	}

	created, err := h.service.SubmitBid(r.Context(), bidEntity)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrBiddingNotStarted),
			errors.Is(err, bid.ErrBiddingEnded),
			errors.Is(err, bid.ErrRouteCancelled):
			h.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, bid.ErrInvalidRouteID),
			errors.Is(err, bid.ErrInvalidRequestID),
			errors.Is(err, bid.ErrInvalidPrice),
			errors.Is(err, bid.ErrInvalidWeight),
			errors.Is(err, bid.ErrInvalidVolume),
			errors.Is(err, bid.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bidDTO := dto.BidFromEntity(*created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(bidDTO)
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
