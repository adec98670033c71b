package book_period

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *fakeMetrics) IncBookingAttempt(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[kind+"/"+outcome]++
}

func (m *fakeMetrics) count(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[attemptKind+"/"+outcome]
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

type env struct {
	store    *memory.Store
	apts     *memory.ApartmentRepository
	periods  *memory.PeriodRepository
	reserved *memory.PeriodReservationRepository
	metrics  *fakeMetrics
	uc       *UseCase
}

func newEnv() *env {
	store := memory.NewStore()
	e := &env{
		store:    store,
		apts:     memory.NewApartmentRepository(store),
		periods:  memory.NewPeriodRepository(store),
		reserved: memory.NewPeriodReservationRepository(store),
		metrics:  &fakeMetrics{},
	}
	e.uc = NewUseCase(e.apts, e.periods, e.reserved, memory.NewTxManager(store), e.metrics, nopLogger{})
	return e
}

func (e *env) period(t *testing.T) *domain.BookingPeriod {
	t.Helper()
	ctx := context.Background()
	apt, err := e.apts.Create(ctx, &domain.Apartment{Name: "Loft", BookingMode: domain.BookingModePeriod, Price: 80})
	require.NoError(t, err)
	p, err := e.periods.Create(ctx, &domain.BookingPeriod{ApartmentID: apt.ID, StartDate: day("2025-08-01"), EndDate: day("2025-08-08")})
	require.NoError(t, err)
	return p
}

func TestExecute_BooksPeriod(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.period(t)

	resp, err := e.uc.Execute(ctx, &Request{PeriodID: p.ID, Guest: domain.GuestInfo{Name: "Anna"}})
	require.NoError(t, err)
	assert.Equal(t, p.ID, resp.PeriodID)
	assert.Equal(t, 7, resp.Nights)
	assert.Equal(t, 560.0, resp.TotalAmount)
	assert.Equal(t, day("2025-08-01"), resp.StartDate)

	stored, err := e.periods.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsBooked)

	_, err = e.uc.Execute(ctx, &Request{PeriodID: p.ID, Guest: domain.GuestInfo{Name: "Boris"}})
	assert.ErrorIs(t, err, domain.ErrPeriodAlreadyBooked)
	assert.Equal(t, 1, e.metrics.count(metrics.OutcomeConflict))
}

func TestExecute_ConcurrentBookings_ExactlyOneWins(t *testing.T) {
	e := newEnv()
	p := e.period(t)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := e.uc.Execute(context.Background(), &Request{PeriodID: p.ID, Guest: domain.GuestInfo{Name: fmt.Sprintf("guest-%d", i)}})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrPeriodAlreadyBooked):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	all, err := e.reserved.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

type failingCreate struct {
	err error
}

func (f failingCreate) Create(context.Context, *domain.PeriodReservation) (*domain.PeriodReservation, error) {
	return nil, f.err
}

func TestExecute_FailedInsertRollsBackFlag(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.period(t)

	uc := NewUseCase(e.apts, e.periods, failingCreate{err: errors.New("disk full")}, memory.NewTxManager(e.store), e.metrics, nopLogger{})

	_, err := uc.Execute(ctx, &Request{PeriodID: p.ID, Guest: domain.GuestInfo{Name: "Anna"}})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	stored, err := e.periods.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsBooked)
}

func TestExecute_Rejections(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	rangeApt, err := e.apts.Create(ctx, &domain.Apartment{Name: "Range", BookingMode: domain.BookingModeFreeRange})
	require.NoError(t, err)
	foreign, err := e.periods.Create(ctx, &domain.BookingPeriod{ApartmentID: rangeApt.ID, StartDate: day("2025-08-01"), EndDate: day("2025-08-08")})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing period id", req: &Request{Guest: domain.GuestInfo{Name: "Anna"}}, wantErr: domain.ErrInvalidInput},
		{name: "unknown period", req: &Request{PeriodID: uuid.New(), Guest: domain.GuestInfo{Name: "Anna"}}, wantErr: domain.ErrPeriodNotFound},
		{name: "free range apartment", req: &Request{PeriodID: foreign.ID, Guest: domain.GuestInfo{Name: "Anna"}}, wantErr: domain.ErrWrongBookingMode},
		{name: "blank guest", req: &Request{PeriodID: foreign.ID}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
