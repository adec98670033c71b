// Package txmanager управляет транзакциями БД.
// Активная транзакция передаётся репозиториям через context (см. dbmetrics.GetExecutor).
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eapache/go-resiliency/retrier"

	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/pgerr"
)

const (
	DefaultRetryAttempts  = 3
	DefaultRetryBaseDelay = 20 * time.Millisecond
)

var (
	// ErrBeginTx ошибка открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Manager менеджер транзакций
type Manager struct {
	db             TxBeginner
	retryAttempts  int
	retryBaseDelay time.Duration
}

// Option настройка менеджера
type Option func(*Manager)

// WithRetry задаёт число повторов сериализуемой транзакции и базовую задержку backoff
func WithRetry(attempts int, baseDelay time.Duration) Option {
	return func(m *Manager) {
		if attempts >= 0 {
			m.retryAttempts = attempts
		}
		if baseDelay > 0 {
			m.retryBaseDelay = baseDelay
		}
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *Manager {
	m := &Manager{
		db:             db,
		retryAttempts:  DefaultRetryAttempts,
		retryBaseDelay: DefaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// При serialization failure / deadlock транзакция повторяется целиком с экспоненциальной
// задержкой, fn заново читает актуальное состояние. Ошибки fn без таких кодов не повторяются.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	r := retrier.New(retrier.ExponentialBackoff(m.retryAttempts, m.retryBaseDelay), retryClassifier{})
	return r.RunCtx(ctx, func(ctx context.Context) error {
		return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	})
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов выполняется в уже открытой транзакции
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

// retryClassifier повторяет только транзиентные ошибки PostgreSQL
type retryClassifier struct{}

func (retryClassifier) Classify(err error) retrier.Action {
	if err == nil {
		return retrier.Succeed
	}
	if pgerr.IsRetryable(err) {
		return retrier.Retry
	}
	return retrier.Fail
}

// IsOutcomeUncertain true, если по ошибке нельзя понять, зафиксирована ли транзакция:
// контекст истек или отменен, либо COMMIT упал не по причине сериализации.
func IsOutcomeUncertain(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return errors.Is(err, ErrCommitTx) && !pgerr.IsRetryable(err)
}
