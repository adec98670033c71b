package create_apartment

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/admin/apartments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.ApartmentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/apartments - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		handlers.HandleError(w, h.logger, "POST /admin/apartments", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("POST /admin/apartments - Apartment created: id=%s, admin=%s", created.ID, admin)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromApartment(created))
}
