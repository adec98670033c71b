package book_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/txmanager"
)

const attemptKind = "range"

// UseCase use case бронирования произвольных дат
type UseCase struct {
	apartmentRepo   ApartmentRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apartmentRepo ApartmentRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		apartmentRepo:   apartmentRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute бронирует [StartDate, EndDate) апартамента.
// Ограничения и пересечения перепроверяются в той же сериализуемой транзакции,
// в которой выполняется вставка. Проигранная гонка возвращается как
// domain.ErrDatesNoLongerAvailable и не повторяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRange: apartment=%s, dates=%s..%s",
		req.ApartmentID, daterange.Format(req.StartDate), daterange.Format(req.EndDate))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRange: validation failed: %v", err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeRejected)
		return nil, err
	}

	var (
		result *domain.RangeReservation
		apt    *domain.Apartment
	)

	// 2. Проверка и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем апартамент: конкурентные брони одного апартамента выстраиваются в очередь
		var err error
		apt, err = uc.apartmentRepo.GetByIDForUpdate(txCtx, req.ApartmentID)
		if err != nil {
			return err
		}

		if !apt.IsFreeRange() {
			return fmt.Errorf("%w: apartment %s books by periods", domain.ErrWrongBookingMode, apt.ID)
		}

		// 2.2. Ограничения по количеству ночей
		if err := apt.ValidateNightCount(req.StartDate, req.EndDate); err != nil {
			return err
		}

		// 2.3. Пересечения с существующими бронированиями
		existing, err := uc.reservationRepo.ListByApartment(txCtx, apt.ID)
		if err != nil {
			return err
		}

		if conflict := domain.FindOverlapping(existing, req.StartDate, req.EndDate); conflict != nil {
			uc.logger.Warn("BookRange: apartment=%s dates overlap reservation=%s (%s..%s)",
				apt.ID, conflict.ID, daterange.Format(conflict.StartDate), daterange.Format(conflict.EndDate))
			return domain.ErrDatesNoLongerAvailable
		}

		// 2.4. Вставка, EXCLUDE ограничение в БД страхует от пропущенного пересечения
		created, err := uc.reservationRepo.Create(txCtx, &domain.RangeReservation{
			ApartmentID: apt.ID,
			StartDate:   daterange.Truncate(req.StartDate),
			EndDate:     daterange.Truncate(req.EndDate),
			Guest:       req.Guest,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.fail(ctx, req, err)
	}

	uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeSuccess)
	uc.logger.Info("BookRange: created reservation=%s for apartment=%s", result.ID, result.ApartmentID)

	nights := result.Nights()
	return &Response{
		ID:          result.ID,
		ApartmentID: result.ApartmentID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Guest:       result.Guest,
		Nights:      nights,
		TotalAmount: apt.TotalPrice(nights),
		CreatedAt:   result.CreatedAt,
	}, nil
}

// fail классифицирует ошибку транзакции и учитывает исход в метриках
func (uc *UseCase) fail(ctx context.Context, req *Request, err error) error {
	switch {
	case errors.Is(err, domain.ErrDatesNoLongerAvailable):
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeConflict)
		return err

	case domain.IsBusiness(err):
		uc.logger.Warn("BookRange: rejected apartment=%s: %v", req.ApartmentID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeRejected)
		return err

	case txmanager.IsOutcomeUncertain(ctx, err):
		uc.logger.Error("BookRange: outcome unknown for apartment=%s: %v", req.ApartmentID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeUnknown)
		return fmt.Errorf("%w: %w", domain.ErrOutcomeUnknown, err)

	default:
		uc.logger.Error("BookRange: store failure for apartment=%s: %v", req.ApartmentID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeUnavailable)
		return domain.WrapStore(err)
	}
}
