package apartments

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// Service сервис управления апартаментами
type Service struct {
	apartmentRepo ApartmentRepository
	rangeRepo     ReservationCounter
	periodResRepo ReservationCounter
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса апартаментов
func NewService(
	apartmentRepo ApartmentRepository,
	rangeRepo ReservationCounter,
	periodResRepo ReservationCounter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apartmentRepo: apartmentRepo,
		rangeRepo:     rangeRepo,
		periodResRepo: periodResRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// List возвращает все апартаменты
func (s *Service) List(ctx context.Context) ([]*domain.Apartment, error) {
	apartments, err := s.apartmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, domain.WrapStore(err)
	}
	return apartments, nil
}

// Get возвращает апартамент по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	apt, err := s.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		if domain.IsBusiness(err) {
			s.logger.Warn("Get: apartment id=%s: %v", id, err)
			return nil, err
		}
		s.logger.Error("Get: repository error for apartment id=%s: %v", id, err)
		return nil, domain.WrapStore(err)
	}
	return apt, nil
}

// Create создает апартамент
func (s *Service) Create(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	apt.ID = uuid.Nil
	apt.Normalize()
	if err := apt.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.apartmentRepo.Create(ctx, apt)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, domain.WrapStore(err)
	}

	s.logger.Info("Create: created apartment id=%s mode=%s", created.ID, created.BookingMode)
	return created, nil
}

// Update обновляет апартамент.
// Режим бронирования меняется только если у апартамента нет бронирований.
func (s *Service) Update(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	apt.Normalize()
	if err := apt.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for apartment id=%s: %v", apt.ID, err)
		return nil, err
	}

	var updated *domain.Apartment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.apartmentRepo.GetByIDForUpdate(txCtx, apt.ID)
		if err != nil {
			return err
		}

		if current.BookingMode != apt.BookingMode {
			total, err := s.countReservations(txCtx, apt.ID)
			if err != nil {
				return err
			}
			if total > 0 {
				return fmt.Errorf("%w: %d reservations", domain.ErrBookingModeLocked, total)
			}
		}

		updated, err = s.apartmentRepo.Update(txCtx, apt)
		return err
	})
	if err != nil {
		if domain.IsBusiness(err) {
			s.logger.Warn("Update: apartment id=%s: %v", apt.ID, err)
			return nil, err
		}
		s.logger.Error("Update: failed for apartment id=%s: %v", apt.ID, err)
		return nil, domain.WrapStore(err)
	}

	s.logger.Info("Update: updated apartment id=%s", updated.ID)
	return updated, nil
}

// Delete удаляет апартамент вместе с периодами и бронированиями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.apartmentRepo.Delete(txCtx, id)
	})
	if err != nil {
		if domain.IsBusiness(err) {
			s.logger.Warn("Delete: apartment id=%s: %v", id, err)
			return err
		}
		s.logger.Error("Delete: failed for apartment id=%s: %v", id, err)
		return domain.WrapStore(err)
	}

	s.logger.Info("Delete: deleted apartment id=%s with its periods and reservations", id)
	return nil
}

func (s *Service) countReservations(ctx context.Context, apartmentID uuid.UUID) (int, error) {
	ranges, err := s.rangeRepo.CountByApartment(ctx, apartmentID)
	if err != nil {
		return 0, err
	}
	periods, err := s.periodResRepo.CountByApartment(ctx, apartmentID)
	if err != nil {
		return 0, err
	}
	return ranges + periods, nil
}
