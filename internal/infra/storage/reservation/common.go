package reservation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/psqlbuilder"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// updateGuest обновляет контактные данные гостя в таблице table
func updateGuest(ctx context.Context, db DBExecutor, table, op string, id uuid.UUID, guest domain.GuestInfo) error {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := psqlbuilder.Update(table).
		Set("user_name", guest.Name).
		Set("user_email", guest.Email).
		Set("user_phone", guest.Phone).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s.UpdateGuest - build update query: %v", ErrBuildQuery, op, err)
	}

	return execAffectingOne(ctx, executor, query, args, op+".UpdateGuest")
}

// deleteByID удаляет строку по id
func deleteByID(ctx context.Context, db DBExecutor, table, op string, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s.Delete - build delete query: %v", ErrBuildQuery, op, err)
	}

	return execAffectingOne(ctx, executor, query, args, op+".Delete")
}

// countByApartment количество бронирований апартамента
func countByApartment(ctx context.Context, db DBExecutor, table, op string, apartmentID uuid.UUID) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s.CountByApartment - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s.CountByApartment - scan count: %w", ErrScanRow, op, err)
	}

	return count, nil
}

func execAffectingOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}
