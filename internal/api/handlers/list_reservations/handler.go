package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

const msgInvalidApartmentID = "некорректный ID апартамента в фильтре"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations?apartmentId=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.QueryUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid apartment filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	views, err := h.service.List(r.Context(), domain.ReservationsFilter{
		ApartmentID: apartmentID,
		Search:      r.URL.Query().Get("search"),
	})
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /admin/reservations", err)
		return
	}

	response := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		response = append(response, fromView(v))
	}

	h.logger.Info("GET /admin/reservations - Listed %d reservations", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
