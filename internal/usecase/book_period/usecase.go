package book_period

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/txmanager"
)

const attemptKind = "period"

// UseCase use case бронирования периода
type UseCase struct {
	apartmentRepo   ApartmentRepository
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apartmentRepo ApartmentRepository,
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		apartmentRepo:   apartmentRepo,
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute бронирует период.
// Флаг is_booked и бронирование фиксируются одной транзакцией: условное обновление
// флага служит блокировкой, вставка идет только после него. При любой ошибке
// откатываются обе записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookPeriod: period=%s", req.PeriodID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookPeriod: validation failed: %v", err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeRejected)
		return nil, err
	}

	var (
		result *domain.PeriodReservation
		period *domain.BookingPeriod
		apt    *domain.Apartment
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем период с блокировкой строки
		var err error
		period, err = uc.periodRepo.GetByIDForUpdate(txCtx, req.PeriodID)
		if err != nil {
			return err
		}

		apt, err = uc.apartmentRepo.GetByID(txCtx, period.ApartmentID)
		if err != nil {
			return err
		}
		if !apt.IsPeriodMode() {
			return fmt.Errorf("%w: apartment %s books by free dates", domain.ErrWrongBookingMode, apt.ID)
		}

		if period.IsBooked {
			return domain.ErrPeriodAlreadyBooked
		}

		// 2.2. Условная запись: is_booked = true только если был false
		if err := uc.periodRepo.MarkBooked(txCtx, period.ID); err != nil {
			return err
		}

		// 2.3. Бронирование, UNIQUE(period_id) страхует от второй записи
		created, err := uc.reservationRepo.Create(txCtx, &domain.PeriodReservation{
			ApartmentID: period.ApartmentID,
			PeriodID:    period.ID,
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

	result.StartDate = period.StartDate
	result.EndDate = period.EndDate

	uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeSuccess)
	uc.logger.Info("BookPeriod: created reservation=%s for period=%s (%s..%s)",
		result.ID, period.ID, daterange.Format(period.StartDate), daterange.Format(period.EndDate))

	nights := period.Nights()
	return &Response{
		ID:          result.ID,
		ApartmentID: result.ApartmentID,
		PeriodID:    result.PeriodID,
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
	case errors.Is(err, domain.ErrPeriodAlreadyBooked):
		uc.logger.Warn("BookPeriod: period=%s already booked", req.PeriodID)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeConflict)
		return err

	case domain.IsBusiness(err):
		uc.logger.Warn("BookPeriod: rejected period=%s: %v", req.PeriodID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeRejected)
		return err

	case txmanager.IsOutcomeUncertain(ctx, err):
		uc.logger.Error("BookPeriod: outcome unknown for period=%s: %v", req.PeriodID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeUnknown)
		return fmt.Errorf("%w: %w", domain.ErrOutcomeUnknown, err)

	default:
		uc.logger.Error("BookPeriod: store failure for period=%s: %v", req.PeriodID, err)
		uc.metrics.IncBookingAttempt(attemptKind, metrics.OutcomeUnavailable)
		return domain.WrapStore(err)
	}
}
