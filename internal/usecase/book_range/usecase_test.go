package book_range

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: make(map[string]int)}
}

func (m *fakeMetrics) IncBookingAttempt(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
	uc      *UseCase
	store   *memory.Store
	apts    *memory.ApartmentRepository
	ranges  *memory.RangeReservationRepository
	metrics *fakeMetrics
}

func newEnv() *env {
	store := memory.NewStore()
	e := &env{
		store:   store,
		apts:    memory.NewApartmentRepository(store),
		ranges:  memory.NewRangeReservationRepository(store),
		metrics: newFakeMetrics(),
	}
	e.uc = NewUseCase(e.apts, e.ranges, memory.NewTxManager(store), e.metrics, nopLogger{})
	return e
}

// apartmentA апартамент A из примера: свободные даты, 2..5 ночей, 100 за ночь
func (e *env) apartmentA(t *testing.T) *domain.Apartment {
	t.Helper()
	apt, err := e.apts.Create(context.Background(), &domain.Apartment{
		Name:        "A",
		BookingMode: domain.BookingModeFreeRange,
		MinNights:   ptr.Ptr(2),
		MaxNights:   ptr.Ptr(5),
		Price:       100,
	})
	require.NoError(t, err)
	return apt
}

func request(aptID uuid.UUID, start, end string) *Request {
	return &Request{
		ApartmentID: aptID,
		StartDate:   day(start),
		EndDate:     day(end),
		Guest:       domain.GuestInfo{Name: "Guest"},
	}
}

func TestExecute_ExampleScenario(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	apt := e.apartmentA(t)

	first, err := e.uc.Execute(ctx, request(apt.ID, "2025-07-01", "2025-07-04"))
	require.NoError(t, err)
	assert.Equal(t, 3, first.Nights)
	assert.Equal(t, 300.0, first.TotalAmount)

	_, err = e.uc.Execute(ctx, request(apt.ID, "2025-07-03", "2025-07-06"))
	assert.ErrorIs(t, err, domain.ErrDatesNoLongerAvailable)

	_, err = e.uc.Execute(ctx, request(apt.ID, "2025-07-04", "2025-07-05"))
	assert.ErrorIs(t, err, domain.ErrTooFewNights)

	_, err = e.uc.Execute(ctx, request(apt.ID, "2025-07-04", "2025-07-10"))
	assert.ErrorIs(t, err, domain.ErrTooManyNights)

	second, err := e.uc.Execute(ctx, request(apt.ID, "2025-07-04", "2025-07-06"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Nights)

	assert.Equal(t, 2, e.metrics.count(metrics.OutcomeSuccess))
	assert.Equal(t, 1, e.metrics.count(metrics.OutcomeConflict))
	assert.Equal(t, 2, e.metrics.count(metrics.OutcomeRejected))
}

func TestExecute_Rejections(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	apt := e.apartmentA(t)

	periodApt, err := e.apts.Create(ctx, &domain.Apartment{Name: "P", BookingMode: domain.BookingModePeriod})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "zero nights", req: request(apt.ID, "2025-07-01", "2025-07-01"), wantErr: domain.ErrInvalidRange},
		{name: "reversed range", req: request(apt.ID, "2025-07-05", "2025-07-01"), wantErr: domain.ErrInvalidRange},
		{name: "missing apartment id", req: request(uuid.Nil, "2025-07-01", "2025-07-03"), wantErr: domain.ErrInvalidInput},
		{name: "unknown apartment", req: request(uuid.New(), "2025-07-01", "2025-07-03"), wantErr: domain.ErrApartmentNotFound},
		{name: "period apartment", req: request(periodApt.ID, "2025-07-01", "2025-07-03"), wantErr: domain.ErrWrongBookingMode},
		{
			name: "blank guest name",
			req: &Request{
				ApartmentID: apt.ID,
				StartDate:   day("2025-07-01"),
				EndDate:     day("2025-07-03"),
				Guest:       domain.GuestInfo{Name: " "},
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	count, err := e.ranges.CountByApartment(ctx, apt.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecute_RejectsStayBeyondLimit(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	// Без ограничений по ночам длину все равно ограничивает MaxStayNights
	apt, err := e.apts.Create(ctx, &domain.Apartment{Name: "Unbounded", BookingMode: domain.BookingModeFreeRange, Price: 100})
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, request(apt.ID, "1700-01-01", "2025-01-01"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	longest := day("2025-01-01")
	resp, err := e.uc.Execute(ctx, &Request{
		ApartmentID: apt.ID,
		StartDate:   longest,
		EndDate:     longest.AddDate(0, 0, domain.MaxStayNights),
		Guest:       domain.GuestInfo{Name: "Guest"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxStayNights, resp.Nights)
	assert.Equal(t, float64(domain.MaxStayNights)*100, resp.TotalAmount)

	count, err := e.ranges.CountByApartment(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, e.metrics.count(metrics.OutcomeRejected))
}

func TestExecute_ConcurrentOverlappingRequests_ExactlyOneWins(t *testing.T) {
	e := newEnv()
	apt := e.apartmentA(t)

	const attempts = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	// Все диапазоны содержат ночь 2025-07-03
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			from := day("2025-07-01").AddDate(0, 0, i%3)
			req := &Request{ApartmentID: apt.ID, StartDate: from, EndDate: from.AddDate(0, 0, 3), Guest: domain.GuestInfo{Name: fmt.Sprintf("guest-%d", i)}}

			_, err := e.uc.Execute(context.Background(), req)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrDatesNoLongerAvailable):
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
}

func TestExecute_RandomConcurrentRequests_NeverOverlap(t *testing.T) {
	e := newEnv()
	apt, err := e.apts.Create(context.Background(), &domain.Apartment{Name: "B", BookingMode: domain.BookingModeFreeRange, Price: 50})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	base := day("2025-09-01")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		from := base.AddDate(0, 0, rng.Intn(60))
		to := from.AddDate(0, 0, 1+rng.Intn(6))

		wg.Add(1)
		go func(from, to time.Time) {
			defer wg.Done()
			_, _ = e.uc.Execute(context.Background(), &Request{ApartmentID: apt.ID, StartDate: from, EndDate: to, Guest: domain.GuestInfo{Name: "g"}})
		}(from, to)
	}
	wg.Wait()

	committed, err := e.ranges.ListByApartment(context.Background(), apt.ID)
	require.NoError(t, err)
	require.NotEmpty(t, committed)

	for i := 0; i < len(committed); i++ {
		for j := i + 1; j < len(committed); j++ {
			a, b := committed[i], committed[j]
			assert.False(t, daterange.Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate),
				"%s..%s overlaps %s..%s", daterange.Format(a.StartDate), daterange.Format(a.EndDate),
				daterange.Format(b.StartDate), daterange.Format(b.EndDate))
		}
	}
}

type failingReservations struct {
	ReservationRepository
	err error
}

func (f failingReservations) ListByApartment(context.Context, uuid.UUID) ([]*domain.RangeReservation, error) {
	return nil, f.err
}

func TestExecute_StoreFailure(t *testing.T) {
	e := newEnv()
	apt := e.apartmentA(t)
	uc := NewUseCase(e.apts, failingReservations{err: errors.New("connection refused")}, memory.NewTxManager(e.store), e.metrics, nopLogger{})

	_, err := uc.Execute(context.Background(), request(apt.ID, "2025-07-01", "2025-07-04"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 1, e.metrics.count(metrics.OutcomeUnavailable))
}

type timeoutTx struct{}

func (timeoutTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("commit: %w", context.DeadlineExceeded)
}

func TestExecute_TimeoutBeforeCommitIsUnknownOutcome(t *testing.T) {
	e := newEnv()
	apt := e.apartmentA(t)
	uc := NewUseCase(e.apts, e.ranges, timeoutTx{}, e.metrics, nopLogger{})

	_, err := uc.Execute(context.Background(), request(apt.ID, "2025-07-01", "2025-07-04"))
	assert.ErrorIs(t, err, domain.ErrOutcomeUnknown)
	assert.Equal(t, domain.CodeOutcomeUnknown, domain.ErrorCode(err))
	assert.Equal(t, 1, e.metrics.count(metrics.OutcomeUnknown))
}
