package list_apartments

import (
	"context"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type ApartmentService interface {
	List(ctx context.Context) ([]*domain.Apartment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
