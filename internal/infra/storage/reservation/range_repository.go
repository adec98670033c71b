package reservation

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

const rangeTable = "range_reservations"

var rangeColumns = []string{
	"id",
	"apartment_id",
	"start_date",
	"end_date",
	"user_name",
	"user_email",
	"user_phone",
	"created_at",
}

// RangeRepository репозиторий бронирований произвольных дат
type RangeRepository struct {
	db DBExecutor
}

// NewRangeRepository создает новый экземпляр репозитория
func NewRangeRepository(db DBExecutor) *RangeRepository {
	return &RangeRepository{db: db}
}

// Create сохраняет бронирование. Пересечение с другим бронированием апартамента
// отсекается EXCLUDE ограничением и возвращается как ErrOverlap.
func (r *RangeRepository) Create(ctx context.Context, res *domain.RangeReservation) (*domain.RangeReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.StartDate = daterange.Truncate(res.StartDate)
	res.EndDate = daterange.Truncate(res.EndDate)

	query, args, err := psqlbuilder.Insert(rangeTable).
		Columns("id", "apartment_id", "start_date", "end_date", "user_name", "user_email", "user_phone").
		Values(res.ID, res.ApartmentID, res.StartDate, res.EndDate, res.Guest.Name, res.Guest.Email, res.Guest.Phone).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Range.Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt)
	if err != nil {
		switch {
		case pgerr.IsExclusionViolation(err):
			return nil, ErrOverlap
		case pgerr.IsForeignKeyViolation(err):
			return nil, ErrApartmentNotFound
		}
		return nil, fmt.Errorf("%w: Range.Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// ListByApartment возвращает бронирования апартамента по дате заезда
func (r *RangeRepository) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*domain.RangeReservation, error) {
	return r.list(ctx, &apartmentID, "ListByApartment")
}

// List возвращает все бронирования, либо только одного апартамента
func (r *RangeRepository) List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.RangeReservation, error) {
	return r.list(ctx, apartmentID, "List")
}

func (r *RangeRepository) list(ctx context.Context, apartmentID *uuid.UUID, op string) ([]*domain.RangeReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rangeColumns...).
		From(rangeTable).
		OrderBy("start_date", "id")
	if apartmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"apartment_id": *apartmentID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Range.%s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Range.%s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.RangeReservation, 0)
	for rows.Next() {
		res, err := scanRange(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Range.%s - scan row: %w", ErrScanRow, op, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Range.%s - rows error: %w", ErrScanRow, op, err)
	}

	return result, nil
}

// GetByID получает бронирование по ID
func (r *RangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RangeReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From(rangeTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Range.GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanRange(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Range.GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// UpdateGuest обновляет контактные данные гостя
func (r *RangeRepository) UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error {
	return updateGuest(ctx, r.db, rangeTable, "Range", id, guest)
}

// Delete удаляет бронирование, освобождая даты
func (r *RangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, rangeTable, "Range", id)
}

// CountByApartment количество бронирований апартамента
func (r *RangeRepository) CountByApartment(ctx context.Context, apartmentID uuid.UUID) (int, error) {
	return countByApartment(ctx, r.db, rangeTable, "Range", apartmentID)
}

func scanRange(row rowScanner) (*domain.RangeReservation, error) {
	var res domain.RangeReservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ApartmentID,
		&res.StartDate,
		&res.EndDate,
		&res.Guest.Name,
		&res.Guest.Email,
		&res.Guest.Phone,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.StartDate = daterange.Truncate(res.StartDate)
	res.EndDate = daterange.Truncate(res.EndDate)
	res.CreatedAt = createdAt.Time

	return &res, nil
}
