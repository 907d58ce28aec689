// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
)

const schema = `
CREATE TABLE IF NOT EXISTS xapi_activities (
    activity_id INTEGER PRIMARY KEY AUTOINCREMENT,
    context_id TEXT NOT NULL,
    title TEXT NOT NULL,
    xapi_activity_id TEXT DEFAULT NULL,
    points_possible REAL NOT NULL DEFAULT 100.0,
    display_order INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_xapi_activities_context ON xapi_activities(context_id, display_order);
CREATE INDEX IF NOT EXISTS idx_xapi_activities_xapi_id ON xapi_activities(xapi_activity_id);
`

const activityColumns = `activity_id, context_id, title, xapi_activity_id, points_possible, display_order, created_at, updated_at`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable, for /health.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ============================================================================
// Activities
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*gradable.Activity, error) {
	var (
		a                gradable.Activity
		xapiID           sql.NullString
		created, updated string
	)
	if err := row.Scan(&a.ID, &a.ContextID, &a.Title, &xapiID, &a.PointsPossible, &a.DisplayOrder, &created, &updated); err != nil {
		return nil, err
	}
	if xapiID.Valid && xapiID.String != "" {
		a.XAPIActivityID = &xapiID.String
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	a.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return &a, nil
}

func (s *SQLiteStore) ListActivities(ctx context.Context, contextID string) ([]*gradable.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+activityColumns+" FROM xapi_activities WHERE context_id = ? ORDER BY display_order ASC, activity_id ASC",
		contextID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*gradable.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *SQLiteStore) GetActivity(ctx context.Context, contextID string, id int64) (*gradable.Activity, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+activityColumns+" FROM xapi_activities WHERE activity_id = ? AND context_id = ?",
		id, contextID,
	)
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) AddActivity(ctx context.Context, a *gradable.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var maxOrder sql.NullInt64
	if err := tx.QueryRowContext(ctx,
		"SELECT MAX(display_order) FROM xapi_activities WHERE context_id = ?", a.ContextID,
	).Scan(&maxOrder); err != nil {
		return fmt.Errorf("failed to read display order: %w", err)
	}

	now := time.Now().UTC()
	order := int(maxOrder.Int64) + 1
	result, err := tx.ExecContext(ctx,
		`INSERT INTO xapi_activities (context_id, title, xapi_activity_id, points_possible, display_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ContextID, a.Title, nullable(a.XAPIActivityID), a.PointsPossible, order,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	a.ID = id
	a.DisplayOrder = order
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) UpdateActivity(ctx context.Context, a *gradable.Activity) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE xapi_activities SET title = ?, xapi_activity_id = ?, points_possible = ?, updated_at = ?
		 WHERE activity_id = ? AND context_id = ?`,
		a.Title, nullable(a.XAPIActivityID), a.PointsPossible, now.Format(time.RFC3339Nano),
		a.ID, a.ContextID,
	)
	if err != nil {
		return err
	}
	if err := expectOneRow(result); err != nil {
		return err
	}
	a.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) DeleteActivity(ctx context.Context, contextID string, id int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM xapi_activities WHERE activity_id = ? AND context_id = ?", id, contextID,
	)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (s *SQLiteStore) MoveActivity(ctx context.Context, contextID string, id int64, dir gradable.Direction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		"SELECT display_order FROM xapi_activities WHERE activity_id = ? AND context_id = ?", id, contextID,
	).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	query := `SELECT activity_id, display_order FROM xapi_activities
		WHERE context_id = ? AND display_order < ? ORDER BY display_order DESC LIMIT 1`
	if dir == gradable.Down {
		query = `SELECT activity_id, display_order FROM xapi_activities
		WHERE context_id = ? AND display_order > ? ORDER BY display_order ASC LIMIT 1`
	}

	var swapID int64
	var swapOrder int
	err = tx.QueryRowContext(ctx, query, contextID, current).Scan(&swapID, &swapOrder)
	if errors.Is(err, sql.ErrNoRows) {
		// Already first or last.
		return nil
	}
	if err != nil {
		return err
	}

	const setOrder = "UPDATE xapi_activities SET display_order = ? WHERE activity_id = ?"
	if _, err := tx.ExecContext(ctx, setOrder, swapOrder, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, setOrder, current, swapID); err != nil {
		return err
	}
	return tx.Commit()
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
