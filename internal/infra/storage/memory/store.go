// Package memory хранилище в памяти с теми же контрактами, что и PostgreSQL репозитории.
// Используется для локального запуска (storage.driver = "memory") и тестов конкурентности.
//
// Все операции сериализуются одной блокировкой на хранилище. Транзакция держит
// блокировку до конца и откатывается восстановлением снимка.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type txKey struct{}

// Store общее состояние всех репозиториев
type Store struct {
	mu sync.Mutex

	apartments         map[uuid.UUID]domain.Apartment
	periods            map[uuid.UUID]domain.BookingPeriod
	rangeReservations  map[uuid.UUID]domain.RangeReservation
	periodReservations map[uuid.UUID]domain.PeriodReservation
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		apartments:         make(map[uuid.UUID]domain.Apartment),
		periods:            make(map[uuid.UUID]domain.BookingPeriod),
		rangeReservations:  make(map[uuid.UUID]domain.RangeReservation),
		periodReservations: make(map[uuid.UUID]domain.PeriodReservation),
	}
}

// PingContext всегда успешен, нужен для readiness проверки
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// withLock выполняет fn под блокировкой хранилища.
// Внутри транзакции блокировка уже захвачена.
func (s *Store) withLock(ctx context.Context, fn func() error) error {
	if s.inTx(ctx) {
		return fn()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

type snapshot struct {
	apartments         map[uuid.UUID]domain.Apartment
	periods            map[uuid.UUID]domain.BookingPeriod
	rangeReservations  map[uuid.UUID]domain.RangeReservation
	periodReservations map[uuid.UUID]domain.PeriodReservation
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		apartments:         cloneMap(s.apartments),
		periods:            cloneMap(s.periods),
		rangeReservations:  cloneMap(s.rangeReservations),
		periodReservations: cloneMap(s.periodReservations),
	}
}

func (s *Store) restore(snap snapshot) {
	s.apartments = snap.apartments
	s.periods = snap.periods
	s.rangeReservations = snap.rangeReservations
	s.periodReservations = snap.periodReservations
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
