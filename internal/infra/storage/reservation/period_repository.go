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

const periodTable = "period_reservations"

// Даты берутся из периода, бронирование их не хранит
var periodColumns = []string{
	"r.id",
	"r.apartment_id",
	"r.period_id",
	"r.user_name",
	"r.user_email",
	"r.user_phone",
	"r.created_at",
	"p.start_date",
	"p.end_date",
}

// PeriodRepository репозиторий бронирований периодов
type PeriodRepository struct {
	db DBExecutor
}

// NewPeriodRepository создает новый экземпляр репозитория
func NewPeriodRepository(db DBExecutor) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// Create сохраняет бронирование периода. Второе бронирование того же периода
// отсекается UNIQUE(period_id) и возвращается как ErrPeriodTaken.
func (r *PeriodRepository) Create(ctx context.Context, res *domain.PeriodReservation) (*domain.PeriodReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(periodTable).
		Columns("id", "apartment_id", "period_id", "user_name", "user_email", "user_phone").
		Values(res.ID, res.ApartmentID, res.PeriodID, res.Guest.Name, res.Guest.Email, res.Guest.Phone).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Period.Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt)
	if err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return nil, ErrPeriodTaken
		case pgerr.IsForeignKeyViolation(err):
			return nil, ErrApartmentNotFound
		}
		return nil, fmt.Errorf("%w: Period.Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

func (r *PeriodRepository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(periodColumns...).
		From(periodTable + " r").
		Join("booking_periods p ON p.id = r.period_id")
}

// List возвращает все бронирования периодов, либо только одного апартамента
func (r *PeriodRepository) List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.PeriodReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().OrderBy("p.start_date", "r.id")
	if apartmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.apartment_id": *apartmentID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Period.List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Period.List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.PeriodReservation, 0)
	for rows.Next() {
		res, err := scanPeriodReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Period.List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Period.List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает бронирование периода по ID
func (r *PeriodRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Period.GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanPeriodReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Period.GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// UpdateGuest обновляет контактные данные гостя
func (r *PeriodRepository) UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error {
	return updateGuest(ctx, r.db, periodTable, "Period", id, guest)
}

// Delete удаляет бронирование. Флаг периода снимает вызывающий в той же транзакции.
func (r *PeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, periodTable, "Period", id)
}

// CountByApartment количество бронирований периодов апартамента
func (r *PeriodRepository) CountByApartment(ctx context.Context, apartmentID uuid.UUID) (int, error) {
	return countByApartment(ctx, r.db, periodTable, "Period", apartmentID)
}

func scanPeriodReservation(row rowScanner) (*domain.PeriodReservation, error) {
	var res domain.PeriodReservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ApartmentID,
		&res.PeriodID,
		&res.Guest.Name,
		&res.Guest.Email,
		&res.Guest.Phone,
		&createdAt,
		&res.StartDate,
		&res.EndDate,
	)
	if err != nil {
		return nil, err
	}

	res.StartDate = daterange.Truncate(res.StartDate)
	res.EndDate = daterange.Truncate(res.EndDate)
	res.CreatedAt = createdAt.Time

	return &res, nil
}
