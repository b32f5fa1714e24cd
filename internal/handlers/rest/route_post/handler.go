package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bidding/internal/dto"
	"bidding/internal/entities"
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
	var routeCreateDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModifyEntity := entities.RouteModify{
		DriverID:          &routeCreateDTO.DriverID,
		OriginLat:         &routeCreateDTO.OriginLat,
		OriginLng:         &routeCreateDTO.OriginLng,
		DestinationLat:    &routeCreateDTO.DestinationLat,
		DestinationLng:    &routeCreateDTO.DestinationLng,
		DepartureTime:     &routeCreateDTO.DepartureTime,
		BiddingStartTime:  &routeCreateDTO.BiddingStartTime,
		DetourToleranceKm: &routeCreateDTO.DetourToleranceKm,
		SuggestedPriceMin: &routeCreateDTO.SuggestedPriceMin,
		SuggestedPriceMax: &routeCreateDTO.SuggestedPriceMax,
		CapacityWeightKg:  routeCreateDTO.CapacityWeightKg,
		CapacityVolumeM3:  routeCreateDTO.CapacityVolumeM3,
	}

	created, err := h.service.CreateRoute(r.Context(), routeModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrMissingRequiredFields),
			errors.Is(err, route.ErrInvalidCoordinates),
			errors.Is(err, route.ErrInvalidSchedule),
			errors.Is(err, route.ErrInvalidPriceRange),
			errors.Is(err, route.ErrInvalidDetourTolerance),
			errors.Is(err, route.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RouteCreateResponse{
		ID: created.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
