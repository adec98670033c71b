package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// RangeReservationRepository бронирования произвольных дат в памяти
type RangeReservationRepository struct {
	store *Store
}

// NewRangeReservationRepository создает репозиторий
func NewRangeReservationRepository(store *Store) *RangeReservationRepository {
	return &RangeReservationRepository{store: store}
}

// Create отклоняет пересечение с бронированиями того же апартамента (аналог EXCLUDE ограничения)
func (r *RangeReservationRepository) Create(ctx context.Context, res *domain.RangeReservation) (*domain.RangeReservation, error) {
	err := r.store.withLock(ctx, func() error {
		if _, ok := r.store.apartments[res.ApartmentID]; !ok {
			return domain.ErrApartmentNotFound
		}

		res.StartDate = daterange.Truncate(res.StartDate)
		res.EndDate = daterange.Truncate(res.EndDate)
		for _, other := range r.store.rangeReservations {
			if other.ApartmentID == res.ApartmentID &&
				daterange.Overlaps(other.StartDate, other.EndDate, res.StartDate, res.EndDate) {
				return domain.ErrDatesNoLongerAvailable
			}
		}

		if res.ID == uuid.Nil {
			res.ID = uuid.New()
		}
		res.CreatedAt = time.Now().UTC()
		r.store.rangeReservations[res.ID] = *res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RangeReservationRepository) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*domain.RangeReservation, error) {
	return r.List(ctx, &apartmentID)
}

func (r *RangeReservationRepository) List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.RangeReservation, error) {
	result := make([]*domain.RangeReservation, 0)
	err := r.store.withLock(ctx, func() error {
		for _, res := range r.store.rangeReservations {
			if apartmentID != nil && res.ApartmentID != *apartmentID {
				continue
			}
			res := res
			result = append(result, &res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (r *RangeReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RangeReservation, error) {
	var result *domain.RangeReservation
	err := r.store.withLock(ctx, func() error {
		res, ok := r.store.rangeReservations[id]
		if !ok {
			return domain.ErrReservationNotFound
		}
		result = &res
		return nil
	})
	return result, err
}

func (r *RangeReservationRepository) UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error {
	return r.store.withLock(ctx, func() error {
		res, ok := r.store.rangeReservations[id]
		if !ok {
			return domain.ErrReservationNotFound
		}
		res.Guest = guest
		r.store.rangeReservations[id] = res
		return nil
	})
}

func (r *RangeReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		if _, ok := r.store.rangeReservations[id]; !ok {
			return domain.ErrReservationNotFound
		}
		delete(r.store.rangeReservations, id)
		return nil
	})
}

func (r *RangeReservationRepository) CountByApartment(ctx context.Context, apartmentID uuid.UUID) (int, error) {
	count := 0
	err := r.store.withLock(ctx, func() error {
		for _, res := range r.store.rangeReservations {
			if res.ApartmentID == apartmentID {
				count++
			}
		}
		return nil
	})
	return count, err
}

// PeriodReservationRepository бронирования периодов в памяти
type PeriodReservationRepository struct {
	store *Store
}

// NewPeriodReservationRepository создает репозиторий
func NewPeriodReservationRepository(store *Store) *PeriodReservationRepository {
	return &PeriodReservationRepository{store: store}
}

// Create отклоняет второе бронирование того же периода (аналог UNIQUE(period_id))
func (r *PeriodReservationRepository) Create(ctx context.Context, res *domain.PeriodReservation) (*domain.PeriodReservation, error) {
	err := r.store.withLock(ctx, func() error {
		if _, ok := r.store.apartments[res.ApartmentID]; !ok {
			return domain.ErrApartmentNotFound
		}
		if _, ok := r.store.periods[res.PeriodID]; !ok {
			return domain.ErrPeriodNotFound
		}
		for _, other := range r.store.periodReservations {
			if other.PeriodID == res.PeriodID {
				return domain.ErrPeriodAlreadyBooked
			}
		}

		if res.ID == uuid.Nil {
			res.ID = uuid.New()
		}
		res.CreatedAt = time.Now().UTC()
		r.store.periodReservations[res.ID] = *res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// withPeriodDates подставляет даты периода, вызывается под блокировкой
func (r *PeriodReservationRepository) withPeriodDates(res domain.PeriodReservation) *domain.PeriodReservation {
	if p, ok := r.store.periods[res.PeriodID]; ok {
		res.StartDate = p.StartDate
		res.EndDate = p.EndDate
	}
	return &res
}

func (r *PeriodReservationRepository) List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.PeriodReservation, error) {
	result := make([]*domain.PeriodReservation, 0)
	err := r.store.withLock(ctx, func() error {
		for _, res := range r.store.periodReservations {
			if apartmentID != nil && res.ApartmentID != *apartmentID {
				continue
			}
			result = append(result, r.withPeriodDates(res))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (r *PeriodReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodReservation, error) {
	var result *domain.PeriodReservation
	err := r.store.withLock(ctx, func() error {
		res, ok := r.store.periodReservations[id]
		if !ok {
			return domain.ErrReservationNotFound
		}
		result = r.withPeriodDates(res)
		return nil
	})
	return result, err
}

func (r *PeriodReservationRepository) UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error {
	return r.store.withLock(ctx, func() error {
		res, ok := r.store.periodReservations[id]
		if !ok {
			return domain.ErrReservationNotFound
		}
		res.Guest = guest
		r.store.periodReservations[id] = res
		return nil
	})
}

func (r *PeriodReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		if _, ok := r.store.periodReservations[id]; !ok {
			return domain.ErrReservationNotFound
		}
		delete(r.store.periodReservations, id)
		return nil
	})
}

func (r *PeriodReservationRepository) CountByApartment(ctx context.Context, apartmentID uuid.UUID) (int, error) {
	count := 0
	err := r.store.withLock(ctx, func() error {
		for _, res := range r.store.periodReservations {
			if res.ApartmentID == apartmentID {
				count++
			}
		}
		return nil
	})
	return count, err
}
