// Package storage persists the operation history: one row per applied
// refactoring, searchable with SQLite FTS5.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"csiface/pkg/types"
)

// History is the SQLite-backed operation log.
type History struct {
	db       *sql.DB
	basePath string
}

// OpenHistory opens (creating if needed) the history database under
// basePath.
func OpenHistory(basePath string) (*History, error) {
	dbPath := filepath.Join(basePath, "history.db")

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	h := &History{db: db, basePath: basePath}
	if err := h.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id TEXT PRIMARY KEY,
		kind TEXT,
		class_name TEXT,
		interface TEXT,
		file TEXT,
		detail TEXT,
		created_at INTEGER
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS operations_fts USING fts5(
		kind,
		class_name,
		interface,
		file,
		detail,
		content='operations',
		content_rowid='rowid'
	);

	CREATE TRIGGER IF NOT EXISTS operations_ai AFTER INSERT ON operations BEGIN
		INSERT INTO operations_fts(rowid, kind, class_name, interface, file, detail)
		VALUES (new.rowid, new.kind, new.class_name, new.interface, new.file, new.detail);
	END;

	CREATE TRIGGER IF NOT EXISTS operations_ad AFTER DELETE ON operations BEGIN
		INSERT INTO operations_fts(operations_fts, rowid, kind, class_name, interface, file, detail)
		VALUES('delete', old.rowid, old.kind, old.class_name, old.interface, old.file, old.detail);
	END;
	`
	_, err := h.db.Exec(schema)
	return err
}

// Record stores one applied operation. The ID and timestamp are filled in
// here; callers pass the rest.
func (h *History) Record(op types.Operation) (types.Operation, error) {
	op.ID = uuid.New().String()
	op.CreatedAt = time.Now()

	_, err := h.db.Exec(
		`INSERT INTO operations (id, kind, class_name, interface, file, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		op.ID, op.Kind, op.ClassName, op.Interface, op.File, op.Detail, op.CreatedAt.Unix(),
	)
	return op, err
}

// Search runs a full-text query over the history, newest first.
func (h *History) Search(query string, limit int) ([]types.Operation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		`SELECT o.id, o.kind, o.class_name, o.interface, o.file, o.detail, o.created_at
		 FROM operations o
		 JOIN operations_fts f ON o.rowid = f.rowid
		 WHERE operations_fts MATCH ?
		 ORDER BY o.created_at DESC
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOperations(rows)
}

// Recent returns the most recent operations.
func (h *History) Recent(limit int) ([]types.Operation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		`SELECT id, kind, class_name, interface, file, detail, created_at
		 FROM operations
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOperations(rows)
}

func scanOperations(rows *sql.Rows) ([]types.Operation, error) {
	var ops []types.Operation
	for rows.Next() {
		var op types.Operation
		var created int64
		if err := rows.Scan(&op.ID, &op.Kind, &op.ClassName, &op.Interface, &op.File, &op.Detail, &created); err != nil {
			return nil, err
		}
		op.CreatedAt = time.Unix(created, 0)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}
