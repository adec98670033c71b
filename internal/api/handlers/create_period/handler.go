package create_period

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/apartments/{apartmentId}/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("POST /admin/apartments/{id}/periods - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	var req CreatePeriodRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/apartments/{id}/periods - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	period, err := req.ToDomain(apartmentID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), period)
	if err != nil {
		handlers.HandleError(w, h.logger, "POST /admin/apartments/{id}/periods", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("POST /admin/apartments/{id}/periods - Period created: id=%s, apartment_id=%s, admin=%s",
		created.ID, apartmentID, admin)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromPeriod(created))
}
