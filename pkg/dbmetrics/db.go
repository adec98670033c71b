package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval период сбора статистики пула соединений
const DefaultPoolStatsInterval = 15 * time.Second

// Collector приёмник метрик БД (реализуется pkg/metrics)
type Collector interface {
	ObserveQuery(operation string, duration time.Duration, err error)
	SetPoolStats(stats sql.DBStats)
}

// DB обёртка над *sql.DB. Без коллектора работает как обычный *sql.DB.
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap оборачивает *sql.DB без сбора метрик
func Wrap(db *sql.DB) *DB {
	return &DB{db: db}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// с интервалом DefaultPoolStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, stopCh <-chan struct{}) *DB {
	return WrapWithInterval(db, collector, DefaultPoolStatsInterval, stopCh)
}

// WrapWithInterval то же, что WrapWithDefault, с явным интервалом
func WrapWithInterval(db *sql.DB, collector Collector, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, collector: collector}
	if collector != nil {
		go wrapped.collectPoolStats(interval, stopCh)
	}
	return wrapped
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию; запросы внутри неё тоже измеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observeOp("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	d.observeOp(operation(query), start, err)
}

func (d *DB) observeOp(op string, start time.Time, err error) {
	if d.collector == nil {
		return
	}
	d.collector.ObserveQuery(op, time.Since(start), err)
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.collector.SetPoolStats(d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.collector.SetPoolStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с измерением запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.parent.observeOp("commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.parent.observeOp("rollback", start, err)
	return err
}

// operation извлекает тип запроса (select/insert/update/delete) для label метрики
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
