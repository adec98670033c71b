package get_apartment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type ApartmentService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
