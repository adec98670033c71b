package reservations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// Service сервис бронирований для администратора
type Service struct {
	apartmentRepo ApartmentRepository
	rangeRepo     RangeReservationRepository
	periodResRepo PeriodReservationRepository
	periodRepo    PeriodReleaser
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	apartmentRepo ApartmentRepository,
	rangeRepo RangeReservationRepository,
	periodResRepo PeriodReservationRepository,
	periodRepo PeriodReleaser,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apartmentRepo: apartmentRepo,
		rangeRepo:     rangeRepo,
		periodResRepo: periodResRepo,
		periodRepo:    periodRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// List возвращает бронирования обоих типов с количеством ночей и суммой, новые первыми
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.ReservationView, error) {
	if len(filter.Search) > domain.MaxSearchQueryLength {
		return nil, fmt.Errorf("%w: search query is too long", domain.ErrInvalidInput)
	}

	var views []*domain.ReservationView

	// Одно согласованное чтение для обеих таблиц
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		apartments, err := s.apartments(txCtx, filter.ApartmentID)
		if err != nil {
			return err
		}

		ranges, err := s.rangeRepo.List(txCtx, filter.ApartmentID)
		if err != nil {
			return err
		}

		periodRes, err := s.periodResRepo.List(txCtx, filter.ApartmentID)
		if err != nil {
			return err
		}

		views = make([]*domain.ReservationView, 0, len(ranges)+len(periodRes))
		for _, r := range ranges {
			views = append(views, buildView(apartments[r.ApartmentID], domain.ReservationKindRange,
				r.ID, r.ApartmentID, nil, r.StartDate, r.EndDate, r.Guest, r.CreatedAt))
		}
		for _, r := range periodRes {
			periodID := r.PeriodID
			views = append(views, buildView(apartments[r.ApartmentID], domain.ReservationKindPeriod,
				r.ID, r.ApartmentID, &periodID, r.StartDate, r.EndDate, r.Guest, r.CreatedAt))
		}
		return nil
	})
	if err != nil {
		return nil, s.classify("List", err)
	}

	filtered := views[:0]
	for _, v := range views {
		if v.Matches(filter.Search) {
			filtered = append(filtered, v)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID.String() < filtered[j].ID.String()
	})

	return filtered, nil
}

// UpdateGuest обновляет контактные данные гостя
func (s *Service) UpdateGuest(ctx context.Context, kind domain.ReservationKind, id uuid.UUID, guest domain.GuestInfo) error {
	guest.Normalize()
	if err := guest.Validate(); err != nil {
		s.logger.Warn("UpdateGuest: validation failed: %v", err)
		return err
	}

	var err error
	switch kind {
	case domain.ReservationKindRange:
		err = s.rangeRepo.UpdateGuest(ctx, id, guest)
	case domain.ReservationKindPeriod:
		err = s.periodResRepo.UpdateGuest(ctx, id, guest)
	default:
		return ErrUnknownKind
	}
	if err != nil {
		return s.classify("UpdateGuest", err)
	}

	s.logger.Info("UpdateGuest: updated %s reservation id=%s", kind, id)
	return nil
}

// Delete удаляет бронирование.
// Для бронирования периода флаг is_booked снимается в той же транзакции.
func (s *Service) Delete(ctx context.Context, kind domain.ReservationKind, id uuid.UUID) error {
	var err error
	switch kind {
	case domain.ReservationKindRange:
		err = s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.rangeRepo.Delete(txCtx, id)
		})
	case domain.ReservationKindPeriod:
		err = s.txManager.Do(ctx, func(txCtx context.Context) error {
			res, err := s.periodResRepo.GetByID(txCtx, id)
			if err != nil {
				return err
			}
			if err := s.periodResRepo.Delete(txCtx, id); err != nil {
				return err
			}
			return s.periodRepo.Release(txCtx, res.PeriodID)
		})
	default:
		return ErrUnknownKind
	}
	if err != nil {
		return s.classify("Delete", err)
	}

	s.logger.Info("Delete: deleted %s reservation id=%s", kind, id)
	return nil
}

func (s *Service) apartments(ctx context.Context, apartmentID *uuid.UUID) (map[uuid.UUID]*domain.Apartment, error) {
	if apartmentID != nil {
		apt, err := s.apartmentRepo.GetByID(ctx, *apartmentID)
		if err != nil {
			return nil, err
		}
		return map[uuid.UUID]*domain.Apartment{apt.ID: apt}, nil
	}

	list, err := s.apartmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.Apartment, len(list))
	for _, apt := range list {
		byID[apt.ID] = apt
	}
	return byID, nil
}

func buildView(
	apt *domain.Apartment,
	kind domain.ReservationKind,
	id, apartmentID uuid.UUID,
	periodID *uuid.UUID,
	start, end time.Time,
	guest domain.GuestInfo,
	createdAt time.Time,
) *domain.ReservationView {
	v := &domain.ReservationView{
		Kind:        kind,
		ID:          id,
		ApartmentID: apartmentID,
		PeriodID:    periodID,
		StartDate:   start,
		EndDate:     end,
		Guest:       guest,
		Nights:      daterange.NightsBetween(start, end),
		CreatedAt:   createdAt,
	}
	if apt != nil {
		v.ApartmentName = apt.Name
		v.ApartmentLocation = apt.Location
		v.TotalAmount = apt.TotalPrice(v.Nights)
	}
	return v
}

func (s *Service) classify(op string, err error) error {
	if domain.IsBusiness(err) {
		s.logger.Warn("%s: %v", op, err)
		return err
	}
	s.logger.Error("%s: store failure: %v", op, err)
	return domain.WrapStore(err)
}
