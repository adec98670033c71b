package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/pgerr"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/ptr"
)

func newMock(t *testing.T) (DBExecutor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func TestRangeRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRangeRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO range_reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	res, err := repo.Create(context.Background(), &domain.RangeReservation{
		ApartmentID: uuid.New(),
		StartDate:   date("2025-07-01"),
		EndDate:     date("2025-07-04"),
		Guest:       domain.GuestInfo{Name: "Anna"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, now, res.CreatedAt)
}

func TestRangeRepository_Create_ExclusionViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRangeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO range_reservations")).
		WillReturnError(&pq.Error{Code: pgerr.CodeExclusionViolation, Constraint: "range_reservations_no_overlap"})

	_, err := repo.Create(context.Background(), &domain.RangeReservation{
		ApartmentID: uuid.New(),
		StartDate:   date("2025-07-03"),
		EndDate:     date("2025-07-06"),
		Guest:       domain.GuestInfo{Name: "Boris"},
	})
	assert.ErrorIs(t, err, domain.ErrDatesNoLongerAvailable)
}

func TestRangeRepository_Create_StoreError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRangeRepository(db)
	cause := &pq.Error{Code: pgerr.CodeSerializationFailure}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO range_reservations")).WillReturnError(cause)

	_, err := repo.Create(context.Background(), &domain.RangeReservation{
		ApartmentID: uuid.New(),
		StartDate:   date("2025-07-03"),
		EndDate:     date("2025-07-06"),
	})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, pgerr.IsRetryable(err))
}

func TestRangeRepository_ListByApartment(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRangeRepository(db)
	aptID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM range_reservations WHERE apartment_id = $1 ORDER BY start_date, id")).
		WithArgs(aptID).
		WillReturnRows(sqlmock.NewRows(rangeColumns).
			AddRow(uuid.New().String(), aptID.String(), date("2025-07-01"), date("2025-07-04"), "Anna", "anna@example.com", nil, time.Now()))

	list, err := repo.ListByApartment(context.Background(), aptID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Nights())
	assert.Equal(t, ptr.Ptr("anna@example.com"), list[0].Guest.Email)
	assert.Nil(t, list[0].Guest.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPeriodRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPeriodRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO period_reservations")).
		WillReturnError(&pq.Error{Code: pgerr.CodeUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.PeriodReservation{
		ApartmentID: uuid.New(),
		PeriodID:    uuid.New(),
		Guest:       domain.GuestInfo{Name: "Anna"},
	})
	assert.ErrorIs(t, err, domain.ErrPeriodAlreadyBooked)
}

func TestPeriodRepository_GetByID_JoinsPeriodDates(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPeriodRepository(db)
	id, aptID, periodID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM period_reservations r JOIN booking_periods p ON p.id = r.period_id WHERE r.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "apartment_id", "period_id", "user_name", "user_email", "user_phone", "created_at", "start_date", "end_date"}).
			AddRow(id.String(), aptID.String(), periodID.String(), "Anna", nil, nil, time.Now(), date("2025-08-01"), date("2025-08-08")))

	res, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, periodID, res.PeriodID)
	assert.Equal(t, 7, res.Nights())
}

func TestPeriodRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPeriodRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_reservations WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestRangeRepository_CountByApartment(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRangeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM range_reservations WHERE apartment_id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByApartment(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
