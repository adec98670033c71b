package period

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/pgerr"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/psqlbuilder"
)

const tableName = "booking_periods"

var columns = []string{
	"id",
	"apartment_id",
	"start_date",
	"end_date",
	"is_booked",
	"created_at",
}

// Repository репозиторий периодов бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает свободный период
func (r *Repository) Create(ctx context.Context, p *domain.BookingPeriod) (*domain.BookingPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.StartDate = daterange.Truncate(p.StartDate)
	p.EndDate = daterange.Truncate(p.EndDate)
	p.IsBooked = false

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "apartment_id", "start_date", "end_date", "is_booked").
		Values(p.ID, p.ApartmentID, p.StartDate, p.EndDate, false).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt)
	if err != nil {
		switch {
		case pgerr.IsExclusionViolation(err):
			return nil, ErrOverlap
		case pgerr.IsForeignKeyViolation(err):
			return nil, ErrApartmentNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает период по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает период с блокировкой строки (только внутри транзакции)
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.BookingPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %w", ErrScanRow, err)
	}

	return p, nil
}

// ListByApartment возвращает периоды апартамента по дате начала.
// onlyAvailable = true оставляет только незабронированные.
func (r *Repository) ListByApartment(ctx context.Context, apartmentID uuid.UUID, onlyAvailable bool) ([]*domain.BookingPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		OrderBy("start_date", "id")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByApartment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByApartment - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.BookingPeriod, 0)
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByApartment - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByApartment - rows error: %w", ErrScanRow, err)
	}

	return periods, nil
}

// MarkBooked условно помечает период забронированным: is_booked = true только если он был false.
// Если ни одна строка не изменилась, возвращает ErrAlreadyBooked.
func (r *Repository) MarkBooked(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_booked", true).
		Where(squirrel.Eq{"id": id, "is_booked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyBooked
	}

	return nil
}

// Release снимает флаг is_booked. Вызывается только при удалении бронирования администратором.
func (r *Repository) Release(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_booked", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

// Delete удаляет свободный период. Забронированный период не удаляется (ErrIsBooked).
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "is_booked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	// Существование проверяется вызывающим под блокировкой, поэтому 0 строк = забронирован
	if rowsAffected == 0 {
		return ErrIsBooked
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPeriod(row rowScanner) (*domain.BookingPeriod, error) {
	var p domain.BookingPeriod
	var createdAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.ApartmentID,
		&p.StartDate,
		&p.EndDate,
		&p.IsBooked,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.StartDate = daterange.Truncate(p.StartDate)
	p.EndDate = daterange.Truncate(p.EndDate)
	p.CreatedAt = createdAt.Time

	return &p, nil
}
