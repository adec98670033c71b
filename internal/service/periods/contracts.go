package periods

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository интерфейс репозитория апартаментов
type ApartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	Create(ctx context.Context, p *domain.BookingPeriod) (*domain.BookingPeriod, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error)
	ListByApartment(ctx context.Context, apartmentID uuid.UUID, onlyAvailable bool) ([]*domain.BookingPeriod, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
