// Package store provides a SQLite-backed history of generated chart documents.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/coopcost/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrRunNotFound is returned when deleting a run id that was never recorded.
var ErrRunNotFound = errors.New("run not found")

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Run is one chart document written to disk.
type Run struct {
	ID        string
	Kind      string
	Path      string
	Values    model.Values
	Scenarios int
	Records   int
	CreatedAt time.Time
}

// History provides SQLite-backed run logging.
type History struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant history database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "coopcost", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "coopcost", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun stores r and its resolved values. An empty ID gets a new UUID
// and a zero CreatedAt is set to now; the stored run is returned.
func (h *History) RecordRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Millisecond)

	tx, err := h.db.Begin()
	if err != nil {
		return r, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs
		(run_id, kind, output_path, scenarios, records, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Path, r.Scenarios, r.Records, r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return r, fmt.Errorf("inserting run: %w", err)
	}

	for name, v := range r.Values {
		data, err := json.Marshal(v)
		if err != nil {
			return r, fmt.Errorf("encoding %s: %w", name, err)
		}
		_, err = tx.Exec(`INSERT INTO run_values (run_id, variable, value) VALUES (?, ?, ?)`,
			r.ID, name, string(data))
		if err != nil {
			return r, fmt.Errorf("inserting value %s: %w", name, err)
		}
	}

	return r, tx.Commit()
}

// RecentRuns returns up to limit runs, newest first. A limit <= 0 returns
// every run.
func (h *History) RecentRuns(limit int) ([]Run, error) {
	query := `SELECT run_id, kind, output_path, scenarios, records, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Kind, &r.Path, &r.Scenarios, &r.Records, &created); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parsing created_at of %s: %w", r.ID, err)
		}
		r.Values = make(model.Values)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return runs, nil
	}

	runIdx := make(map[string]int, len(runs))
	ids := make([]any, len(runs))
	for i, r := range runs {
		runIdx[r.ID] = i
		ids[i] = r.ID
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	valueRows, err := h.db.Query(`SELECT run_id, variable, value FROM run_values
		WHERE run_id IN (`+placeholders+`)`, ids...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = valueRows.Close() }()

	for valueRows.Next() {
		var id, name, data string
		if err := valueRows.Scan(&id, &name, &data); err != nil {
			return nil, err
		}
		var v model.Value
		if err := json.Unmarshal([]byte(data), &v); err != nil {
			return nil, fmt.Errorf("decoding %s of run %s: %w", name, id, err)
		}
		if idx, ok := runIdx[id]; ok {
			runs[idx].Values[name] = v
		}
	}

	return runs, valueRows.Err()
}

// DeleteRun removes a run and its values.
func (h *History) DeleteRun(id string) error {
	res, err := h.db.Exec("DELETE FROM runs WHERE run_id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// RunCount returns the number of recorded runs.
func (h *History) RunCount() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
