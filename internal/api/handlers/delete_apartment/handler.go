package delete_apartment

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
)

const msgInvalidApartmentID = "некорректный ID апартамента"

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

// Handle DELETE /api/v1/admin/apartments/{apartmentId}
// Периоды и бронирования апартамента удаляются каскадно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("DELETE /admin/apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	if err := h.service.Delete(r.Context(), apartmentID); err != nil {
		handlers.HandleError(w, h.logger, "DELETE /admin/apartments/{id}", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("DELETE /admin/apartments/{id} - Apartment deleted: id=%s, admin=%s", apartmentID, admin)
	handlers.RespondNoContent(w)
}
