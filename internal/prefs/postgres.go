package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vangoframework/hotelier/internal/table"
)

const schema = `
CREATE TABLE IF NOT EXISTS table_views (
	user_key   TEXT NOT NULL,
	table_id   TEXT NOT NULL,
	page_size  INTEGER NOT NULL DEFAULT 10,
	sort_key   TEXT NOT NULL DEFAULT '',
	sort_dir   TEXT NOT NULL DEFAULT '',
	search     TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_key, table_id)
)`

// PostgresStore keeps views in the table_views table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store on pool. Call EnsureSchema before use.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the table_views table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create table_views: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, userKey, tableID string) (View, bool, error) {
	if userKey == "" || tableID == "" {
		return View{}, false, ErrInvalidKey
	}

	var (
		v       View
		sortKey string
		sortDir string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT page_size, sort_key, sort_dir, search, updated_at
		FROM table_views
		WHERE user_key = $1 AND table_id = $2
	`, userKey, tableID).Scan(&v.PageSize, &sortKey, &sortDir, &v.Search, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return View{}, false, nil
	}
	if err != nil {
		return View{}, false, fmt.Errorf("get table view: %w", err)
	}

	v.Sort = table.SortBy(sortKey, table.ParseDirection(sortDir))
	return v, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, userKey, tableID string, v View) error {
	if userKey == "" || tableID == "" {
		return ErrInvalidKey
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO table_views (user_key, table_id, page_size, sort_key, sort_dir, search, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_key, table_id) DO UPDATE SET
			page_size = EXCLUDED.page_size,
			sort_key = EXCLUDED.sort_key,
			sort_dir = EXCLUDED.sort_dir,
			search = EXCLUDED.search,
			updated_at = EXCLUDED.updated_at
	`, userKey, tableID, table.ClampPageSize(v.PageSize), v.Sort.ColumnKey, v.Sort.Direction.String(), v.Search, time.Now())
	if err != nil {
		return fmt.Errorf("save table view: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userKey, tableID string) error {
	if userKey == "" || tableID == "" {
		return ErrInvalidKey
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM table_views WHERE user_key = $1 AND table_id = $2`, userKey, tableID); err != nil {
		return fmt.Errorf("delete table view: %w", err)
	}
	return nil
}
