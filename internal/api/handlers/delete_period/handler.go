package delete_period

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
)

const msgInvalidPeriodID = "некорректный ID периода"

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

// Handle DELETE /api/v1/admin/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID, err := handlers.PathUUID(r, "periodId")
	if err != nil {
		h.logger.Warn("DELETE /admin/periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	if err := h.service.Delete(r.Context(), periodID); err != nil {
		handlers.HandleError(w, h.logger, "DELETE /admin/periods/{id}", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("DELETE /admin/periods/{id} - Period deleted: id=%s, admin=%s", periodID, admin)
	handlers.RespondNoContent(w)
}
