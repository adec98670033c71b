package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository апартаменты в памяти
type ApartmentRepository struct {
	store *Store
}

// NewApartmentRepository создает репозиторий апартаментов
func NewApartmentRepository(store *Store) *ApartmentRepository {
	return &ApartmentRepository{store: store}
}

func cloneApartment(a domain.Apartment) *domain.Apartment {
	a.Images = append([]string{}, a.Images...)
	if a.MinNights != nil {
		v := *a.MinNights
		a.MinNights = &v
	}
	if a.MaxNights != nil {
		v := *a.MaxNights
		a.MaxNights = &v
	}
	return &a
}

func (r *ApartmentRepository) Create(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	err := r.store.withLock(ctx, func() error {
		if apt.ID == uuid.Nil {
			apt.ID = uuid.New()
		}
		now := time.Now().UTC()
		apt.CreatedAt, apt.UpdatedAt = now, now
		r.store.apartments[apt.ID] = *cloneApartment(*apt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return apt, nil
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	var result *domain.Apartment
	err := r.store.withLock(ctx, func() error {
		apt, ok := r.store.apartments[id]
		if !ok {
			return domain.ErrApartmentNotFound
		}
		result = cloneApartment(apt)
		return nil
	})
	return result, err
}

// GetByIDForUpdate внутри транзакции хранилище уже заблокировано целиком
func (r *ApartmentRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	return r.GetByID(ctx, id)
}

func (r *ApartmentRepository) List(ctx context.Context) ([]*domain.Apartment, error) {
	result := make([]*domain.Apartment, 0)
	err := r.store.withLock(ctx, func() error {
		for _, apt := range r.store.apartments {
			result = append(result, cloneApartment(apt))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (r *ApartmentRepository) Update(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	err := r.store.withLock(ctx, func() error {
		existing, ok := r.store.apartments[apt.ID]
		if !ok {
			return domain.ErrApartmentNotFound
		}
		apt.CreatedAt = existing.CreatedAt
		apt.UpdatedAt = time.Now().UTC()
		r.store.apartments[apt.ID] = *cloneApartment(*apt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return apt, nil
}

// Delete удаляет апартамент вместе с периодами и бронированиями
func (r *ApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.withLock(ctx, func() error {
		if _, ok := r.store.apartments[id]; !ok {
			return domain.ErrApartmentNotFound
		}
		delete(r.store.apartments, id)

		for pid, p := range r.store.periods {
			if p.ApartmentID == id {
				delete(r.store.periods, pid)
			}
		}
		for rid, res := range r.store.rangeReservations {
			if res.ApartmentID == id {
				delete(r.store.rangeReservations, rid)
			}
		}
		for rid, res := range r.store.periodReservations {
			if res.ApartmentID == id {
				delete(r.store.periodReservations, rid)
			}
		}
		return nil
	})
}
