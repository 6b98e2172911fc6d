package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"datepicker-bot/internal/domain"
)

// фиксированная ширина, чтобы строки сравнивались как время
const timeLayout = "2006-01-02 15:04:05.000000000"

type SqliteStateRepo struct {
	db  *sql.DB
	now func() time.Time
}

var _ domain.StateRepo = (*SqliteStateRepo)(nil)

func NewSqliteStateRepo(db *sql.DB) *SqliteStateRepo {
	return &SqliteStateRepo{db: db, now: time.Now}
}

func (r *SqliteStateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM picker_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get picker state %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SqliteStateRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO picker_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("set picker state %q: %w", key, err)
	}
	return nil
}

// Prune удаляет состояния, которые не обновлялись с момента before.
func (r *SqliteStateRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM picker_state WHERE updated_at < ?`,
		before.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("prune picker state: %w", err)
	}
	return res.RowsAffected()
}

