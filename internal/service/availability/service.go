// Package availability проверка доступности и выборки для календаря.
// Все методы только читают и не блокируют, результат носит рекомендательный характер:
// окончательная проверка выполняется при записи бронирования.
package availability

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// Service сервис доступности апартаментов
type Service struct {
	apartmentRepo ApartmentRepository
	periodRepo    PeriodRepository
	rangeRepo     RangeReservationRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	apartmentRepo ApartmentRepository,
	periodRepo PeriodRepository,
	rangeRepo RangeReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		apartmentRepo: apartmentRepo,
		periodRepo:    periodRepo,
		rangeRepo:     rangeRepo,
		logger:        logger,
	}
}

// IsAvailable проверяет, свободен ли диапазон [start, end) апартамента со свободным выбором дат
func (s *Service) IsAvailable(ctx context.Context, apartmentID uuid.UUID, start, end time.Time) (bool, error) {
	if !daterange.IsValid(start, end) {
		return false, domain.ErrInvalidRange
	}

	apt, err := s.getApartment(ctx, "IsAvailable", apartmentID)
	if err != nil {
		return false, err
	}
	if !apt.IsFreeRange() {
		return false, domain.ErrWrongBookingMode
	}

	existing, err := s.rangeRepo.ListByApartment(ctx, apartmentID)
	if err != nil {
		s.logger.Error("IsAvailable: failed to list reservations of apartment=%s: %v", apartmentID, err)
		return false, domain.WrapStore(err)
	}

	conflict := domain.FindOverlapping(existing, start, end)
	if conflict != nil {
		s.logger.Info("IsAvailable: apartment=%s %s..%s overlaps reservation=%s",
			apartmentID, daterange.Format(start), daterange.Format(end), conflict.ID)
	}
	return conflict == nil, nil
}

// IsPeriodBookable проверяет, что период существует, принадлежит апартаменту и свободен
func (s *Service) IsPeriodBookable(ctx context.Context, apartmentID, periodID uuid.UUID) (bool, error) {
	apt, err := s.getApartment(ctx, "IsPeriodBookable", apartmentID)
	if err != nil {
		return false, err
	}
	if !apt.IsPeriodMode() {
		return false, domain.ErrWrongBookingMode
	}

	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		if domain.IsBusiness(err) {
			return false, err
		}
		s.logger.Error("IsPeriodBookable: failed to get period=%s: %v", periodID, err)
		return false, domain.WrapStore(err)
	}
	if period.ApartmentID != apartmentID {
		return false, domain.ErrPeriodNotFound
	}

	return !period.IsBooked, nil
}

// ValidateStay проверяет количество ночей по ограничениям апартамента
func (s *Service) ValidateStay(ctx context.Context, apartmentID uuid.UUID, start, end time.Time) error {
	if !daterange.IsValid(start, end) {
		return domain.ErrInvalidRange
	}
	if err := domain.ValidateStayLength(start, end); err != nil {
		return err
	}

	apt, err := s.getApartment(ctx, "ValidateStay", apartmentID)
	if err != nil {
		return err
	}
	if !apt.IsFreeRange() {
		return domain.ErrWrongBookingMode
	}

	return apt.ValidateNightCount(start, end)
}

// BookedDates возвращает занятые дни апартамента по возрастанию, без повторов.
// Дни каждого бронирования перечисляются включая день выезда.
func (s *Service) BookedDates(ctx context.Context, apartmentID uuid.UUID) ([]time.Time, error) {
	if _, err := s.getApartment(ctx, "BookedDates", apartmentID); err != nil {
		return nil, err
	}

	reservations, err := s.rangeRepo.ListByApartment(ctx, apartmentID)
	if err != nil {
		s.logger.Error("BookedDates: failed to list reservations of apartment=%s: %v", apartmentID, err)
		return nil, domain.WrapStore(err)
	}

	seen := make(map[time.Time]struct{})
	dates := make([]time.Time, 0)
	for _, r := range reservations {
		for _, d := range daterange.EnumerateDays(r.StartDate, r.EndDate) {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// AvailablePeriods возвращает незабронированные периоды апартамента.
// После смены режима на FreeRange старые периоды остаются в хранилище,
// но предлагать их нельзя.
func (s *Service) AvailablePeriods(ctx context.Context, apartmentID uuid.UUID) ([]*domain.BookingPeriod, error) {
	apt, err := s.getApartment(ctx, "AvailablePeriods", apartmentID)
	if err != nil {
		return nil, err
	}
	if !apt.IsPeriodMode() {
		s.logger.Warn("AvailablePeriods: apartment=%s is not in period mode", apartmentID)
		return nil, domain.ErrWrongBookingMode
	}

	periods, err := s.periodRepo.ListByApartment(ctx, apartmentID, true)
	if err != nil {
		s.logger.Error("AvailablePeriods: failed to list periods of apartment=%s: %v", apartmentID, err)
		return nil, domain.WrapStore(err)
	}

	return periods, nil
}

func (s *Service) getApartment(ctx context.Context, op string, id uuid.UUID) (*domain.Apartment, error) {
	apt, err := s.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		if domain.IsBusiness(err) {
			s.logger.Warn("%s: apartment=%s: %v", op, id, err)
			return nil, err
		}
		s.logger.Error("%s: failed to get apartment=%s: %v", op, id, err)
		return nil, domain.WrapStore(err)
	}
	return apt, nil
}
