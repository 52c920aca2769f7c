package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

const (
	target = "postgres"

	// DefaultStatsInterval период снятия статистики пула
	DefaultStatsInterval = 15 * time.Second
)

// Recorder получатель метрик базы данных
type Recorder interface {
	ObserveIntegration(target, operation, result string, elapsed time.Duration)
	SetDBPool(open, inUse, idle int)
}

// DB обертка над *sql.DB, фиксирующая длительность и результат запросов
// Реализует room.DBExecutor
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает соединение и снимает статистику пула до закрытия stop
func WrapWithDefault(db *sql.DB, recorder Recorder, stop <-chan struct{}) *DB {
	w := Wrap(db, recorder)
	go w.collectStats(DefaultStatsInterval, stop)
	return w
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", err, started)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий не больше одной строки
// sql.ErrNoRows не считается ошибкой
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	err := row.Err()
	d.observe("query_row", err, started)
	return row
}

// PingContext проверяет соединение (используется в /readyz)
func (d *DB) PingContext(ctx context.Context) error {
	started := time.Now()
	err := d.db.PingContext(ctx)
	d.observe("ping", err, started)
	return err
}

func (d *DB) observe(operation string, err error, started time.Time) {
	result := "ok"
	if err != nil && err != sql.ErrNoRows {
		result = "error"
	}
	d.recorder.ObserveIntegration(target, operation, result, time.Since(started))
}

func (d *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordStats()
	for {
		select {
		case <-ticker.C:
			d.recordStats()
		case <-stop:
			return
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.recorder.SetDBPool(stats.OpenConnections, stats.InUse, stats.Idle)
}
