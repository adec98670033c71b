package memory

import (
	"context"
	"fmt"
)

// TxManager транзакции поверх Store: блокировка на время fn и откат снимком при ошибке
type TxManager struct {
	store *Store
}

// NewTxManager создает менеджер транзакций хранилища
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции. Хранилище и так сериализует всё, повторы не нужны.
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := m.store

	if s.inTx(ctx) {
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	txCtx := context.WithValue(ctx, txKey{}, s)

	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		s.restore(snap)
		return err
	}

	// Коммит после отмены контекста не выполняется, как и в PostgreSQL
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.restore(snap)
		return fmt.Errorf("memory: commit aborted: %w", ctxErr)
	}

	return nil
}
