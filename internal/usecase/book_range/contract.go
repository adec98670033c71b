package book_range

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository интерфейс репозитория апартаментов
type ApartmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
}

// ReservationRepository интерфейс репозитория бронирований произвольных дат
type ReservationRepository interface {
	ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*domain.RangeReservation, error)
	Create(ctx context.Context, res *domain.RangeReservation) (*domain.RangeReservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик попыток бронирования
type Metrics interface {
	IncBookingAttempt(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
