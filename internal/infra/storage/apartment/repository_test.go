package apartment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func apartmentRow(id uuid.UUID, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id.String(), "Sea View", "Sochi", "two rooms", 100.0, "{a.jpg,b.jpg}",
		"free_range", int64(2), int64(5), true, now, now,
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM apartments WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(apartmentRow(id, now))

	apt, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, apt.ID)
	assert.Equal(t, domain.BookingModeFreeRange, apt.BookingMode)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, apt.Images)
	assert.Equal(t, ptr.Ptr(2), apt.MinNights)
	assert.Equal(t, ptr.Ptr(5), apt.MaxNights)
	assert.Equal(t, 100.0, apt.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery("FROM apartments").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrApartmentNotFound)
	assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
}

func TestRepository_GetByIDForUpdate_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WillReturnRows(apartmentRow(id, time.Now()))

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	_, err = repo.GetByIDForUpdate(ctx, id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO apartments")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	apt, err := repo.Create(context.Background(), &domain.Apartment{
		Name:        "Loft",
		Price:       50,
		BookingMode: domain.BookingModePeriod,
		Images:      []string{},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, apt.ID)
	assert.Equal(t, now, apt.CreatedAt)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM apartments WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
}
