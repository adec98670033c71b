package apartments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository интерфейс репозитория апартаментов
type ApartmentRepository interface {
	Create(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
	Update(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationCounter считает бронирования апартамента
type ReservationCounter interface {
	CountByApartment(ctx context.Context, apartmentID uuid.UUID) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
