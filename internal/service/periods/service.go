package periods

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// Service сервис управления периодами бронирования
type Service struct {
	apartmentRepo ApartmentRepository
	periodRepo    PeriodRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса периодов
func NewService(
	apartmentRepo ApartmentRepository,
	periodRepo PeriodRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apartmentRepo: apartmentRepo,
		periodRepo:    periodRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// List возвращает все периоды апартамента, включая забронированные
func (s *Service) List(ctx context.Context, apartmentID uuid.UUID) ([]*domain.BookingPeriod, error) {
	if _, err := s.apartmentRepo.GetByID(ctx, apartmentID); err != nil {
		return nil, s.classify("List", err)
	}

	periods, err := s.periodRepo.ListByApartment(ctx, apartmentID, false)
	if err != nil {
		return nil, s.classify("List", err)
	}
	return periods, nil
}

// Create создает свободный период. Период не должен пересекаться с другими периодами апартамента.
func (s *Service) Create(ctx context.Context, p *domain.BookingPeriod) (*domain.BookingPeriod, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.BookingPeriod
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apt, err := s.apartmentRepo.GetByIDForUpdate(txCtx, p.ApartmentID)
		if err != nil {
			return err
		}
		if !apt.IsPeriodMode() {
			return fmt.Errorf("%w: apartment %s books by free dates", domain.ErrWrongBookingMode, apt.ID)
		}

		existing, err := s.periodRepo.ListByApartment(txCtx, apt.ID, false)
		if err != nil {
			return err
		}
		if other := domain.FindOverlappingPeriod(existing, p.StartDate, p.EndDate); other != nil {
			return fmt.Errorf("%w: %s..%s", domain.ErrPeriodOverlap,
				daterange.Format(other.StartDate), daterange.Format(other.EndDate))
		}

		created, err = s.periodRepo.Create(txCtx, p)
		return err
	})
	if err != nil {
		return nil, s.classify("Create", err)
	}

	s.logger.Info("Create: created period id=%s for apartment=%s (%s..%s)",
		created.ID, created.ApartmentID, daterange.Format(created.StartDate), daterange.Format(created.EndDate))
	return created, nil
}

// Delete удаляет свободный период. Забронированный период удалить нельзя:
// сначала удаляется бронирование, что освобождает период.
func (s *Service) Delete(ctx context.Context, periodID uuid.UUID) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		p, err := s.periodRepo.GetByIDForUpdate(txCtx, periodID)
		if err != nil {
			return err
		}
		if p.IsBooked {
			return domain.ErrPeriodIsBooked
		}
		return s.periodRepo.Delete(txCtx, periodID)
	})
	if err != nil {
		return s.classify("Delete", err)
	}

	s.logger.Info("Delete: deleted period id=%s", periodID)
	return nil
}

func (s *Service) classify(op string, err error) error {
	if domain.IsBusiness(err) {
		s.logger.Warn("%s: %v", op, err)
		return err
	}
	s.logger.Error("%s: store failure: %v", op, err)
	return domain.WrapStore(err)
}
