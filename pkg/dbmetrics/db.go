package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс *sql.DB и *DB для репозиториев
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder получатель метрик запросов
type Recorder interface {
	ObserveDBQuery(operation string, err error, duration time.Duration)
	SetDBPoolStats(open, inUse, idle int, waitCount int64)
}

// DB обертка над *sql.DB, замеряющая каждый запрос
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с периодом DefaultStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	go wrapped.collectStats(DefaultStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(operation(query), err, time.Since(start))
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(operation(query), err, time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку.
// Ошибка станет известна только при Scan, поэтому учитывается как успешный вызов.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(operation(query), row.Err(), time.Since(start))
	return row
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordStats()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.recordStats()
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)
}

// operation первое ключевое слово запроса: select, insert, update...
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
