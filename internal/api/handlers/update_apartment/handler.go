package update_apartment

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
	service ApartmentService
	logger  Logger
}

func NewHandler(service ApartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/apartments/{apartmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("PUT /admin/apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	var req handlers.ApartmentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /admin/apartments/{id} - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	apt := req.ToDomain()
	apt.ID = apartmentID

	updated, err := h.service.Update(r.Context(), apt)
	if err != nil {
		handlers.HandleError(w, h.logger, "PUT /admin/apartments/{id}", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("PUT /admin/apartments/{id} - Apartment updated: id=%s, admin=%s", updated.ID, admin)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromApartment(updated))
}
