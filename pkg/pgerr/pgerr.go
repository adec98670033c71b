// Package pgerr классифицирует ошибки PostgreSQL, возвращаемые драйвером lib/pq
package pgerr

import (
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, на которые реагирует сервис
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// Code возвращает SQLSTATE ошибки или пустую строку, если это не ошибка PostgreSQL
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint возвращает имя нарушенного ограничения (если есть)
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsUniqueViolation нарушение UNIQUE
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsExclusionViolation нарушение EXCLUDE ограничения (пересечение диапазонов)
func IsExclusionViolation(err error) bool {
	return Code(err) == CodeExclusionViolation
}

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsRetryable сообщает, можно ли повторить транзакцию целиком.
// Бизнес-ошибки сюда никогда не попадают.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch Code(err) {
	case CodeSerializationFailure, CodeDeadlockDetected:
		return true
	}
	return errors.Is(err, driver.ErrBadConn)
}
