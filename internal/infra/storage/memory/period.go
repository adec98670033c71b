package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// PeriodRepository периоды бронирования в памяти
type PeriodRepository struct {
	store *Store
}

// NewPeriodRepository создает репозиторий периодов
func NewPeriodRepository(store *Store) *PeriodRepository {
	return &PeriodRepository{store: store}
}

// Create создает свободный период, пересечения с периодами того же апартамента отклоняются
func (r *PeriodRepository) Create(ctx context.Context, p *domain.BookingPeriod) (*domain.BookingPeriod, error) {
	err := r.store.withLock(ctx, func() error {
		if _, ok := r.store.apartments[p.ApartmentID]; !ok {
			return domain.ErrApartmentNotFound
		}

		p.StartDate = daterange.Truncate(p.StartDate)
		p.EndDate = daterange.Truncate(p.EndDate)
		for _, other := range r.store.periods {
			if other.ApartmentID == p.ApartmentID && other.Overlaps(p.StartDate, p.EndDate) {
				return domain.ErrPeriodOverlap
			}
		}

		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		p.IsBooked = false
		p.CreatedAt = time.Now().UTC()
		r.store.periods[p.ID] = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PeriodRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error) {
	var result *domain.BookingPeriod
	err := r.store.withLock(ctx, func() error {
		p, ok := r.store.periods[id]
		if !ok {
			return domain.ErrPeriodNotFound
		}
		result = &p
		return nil
	})
	return result, err
}

func (r *PeriodRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error) {
	return r.GetByID(ctx, id)
}

func (r *PeriodRepository) ListByApartment(ctx context.Context, apartmentID uuid.UUID, onlyAvailable bool) ([]*domain.BookingPeriod, error) {
	result := make([]*domain.BookingPeriod, 0)
	err := r.store.withLock(ctx, func() error {
		for _, p := range r.store.periods {
			if p.ApartmentID != apartmentID || (onlyAvailable && p.IsBooked) {
				continue
			}
			p := p
			result = append(result, &p)
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

// MarkBooked условная запись: успешна только для свободного периода
func (r *PeriodRepository) MarkBooked(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		p, ok := r.store.periods[id]
		if !ok || p.IsBooked {
			return domain.ErrPeriodAlreadyBooked
		}
		p.IsBooked = true
		r.store.periods[id] = p
		return nil
	})
}

func (r *PeriodRepository) Release(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		p, ok := r.store.periods[id]
		if !ok {
			return domain.ErrPeriodNotFound
		}
		p.IsBooked = false
		r.store.periods[id] = p
		return nil
	})
}

func (r *PeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		p, ok := r.store.periods[id]
		if !ok || p.IsBooked {
			return domain.ErrPeriodIsBooked
		}
		delete(r.store.periods, id)
		return nil
	})
}
