package update_apartment

import (
	"context"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type ApartmentService interface {
	Update(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
