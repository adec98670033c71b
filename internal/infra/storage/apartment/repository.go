package apartment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/psqlbuilder"
)

const tableName = "apartments"

var columns = []string{
	"id",
	"name",
	"location",
	"description",
	"price",
	"images",
	"booking_mode",
	"min_nights",
	"max_nights",
	"disable_booked_dates",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с апартаментами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория апартаментов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый апартамент. ID генерируется, если не задан.
func (r *Repository) Create(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if apt.ID == uuid.Nil {
		apt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"name",
			"location",
			"description",
			"price",
			"images",
			"booking_mode",
			"min_nights",
			"max_nights",
			"disable_booked_dates",
		).
		Values(
			apt.ID,
			apt.Name,
			apt.Location,
			apt.Description,
			apt.Price,
			pq.Array(apt.Images),
			apt.BookingMode,
			apt.MinNights,
			apt.MaxNights,
			apt.DisableBookedDates,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.CreatedAt, &apt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return apt, nil
}

// GetByID получает апартамент по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает апартамент и блокирует строку до конца транзакции.
// Вне транзакции работает как GetByID.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Apartment, error) {
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

	apt, err := scanApartment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan apartment: %w", ErrScanRow, err)
	}

	return apt, nil
}

// List возвращает все апартаменты, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	apartments := make([]*domain.Apartment, 0)
	for rows.Next() {
		apt, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		apartments = append(apartments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return apartments, nil
}

// Update обновляет все редактируемые поля апартамента
func (r *Repository) Update(ctx context.Context, apt *domain.Apartment) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", apt.Name).
		Set("location", apt.Location).
		Set("description", apt.Description).
		Set("price", apt.Price).
		Set("images", pq.Array(apt.Images)).
		Set("booking_mode", apt.BookingMode).
		Set("min_nights", apt.MinNights).
		Set("max_nights", apt.MaxNights).
		Set("disable_booked_dates", apt.DisableBookedDates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": apt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.CreatedAt, &apt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return apt, nil
}

// Delete удаляет апартамент. Периоды и бронирования удаляются каскадно (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
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

	if rowsAffected == 0 {
		return ErrApartmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApartment(row rowScanner) (*domain.Apartment, error) {
	var apt domain.Apartment
	var images []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.Name,
		&apt.Location,
		&apt.Description,
		&apt.Price,
		pq.Array(&images),
		&apt.BookingMode,
		&apt.MinNights,
		&apt.MaxNights,
		&apt.DisableBookedDates,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if images == nil {
		images = []string{}
	}
	apt.Images = images
	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}
