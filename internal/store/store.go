package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS onboarding_docs (
	tenant_id  TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS interview_decisions (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	turn_id        TEXT NOT NULL,
	tenant_id      TEXT NOT NULL,
	round          INTEGER NOT NULL,
	action         TEXT NOT NULL,
	decision       TEXT NOT NULL,
	question_id    TEXT,
	suggested_key  TEXT,
	confidence     REAL NOT NULL DEFAULT 0,
	conflicts_json TEXT,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interview_decisions_tenant
ON interview_decisions(tenant_id, created_at);
`

// #endregion schema

// #region store-struct

// Store persists per-tenant onboarding documents in SQLite and serializes
// read-modify-write cycles per tenant.
type Store struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[STORE] opened %s", dbPath)
	return &Store{db: db, locks: make(map[string]*sync.Mutex)}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region tenant-lock

func (s *Store) tenantLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[tenantID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[tenantID] = l
	}
	return l
}

// #endregion tenant-lock

// #region get-doc

// GetDoc reads a tenant's onboarding document. Returns nil when the tenant
// has none yet.
func (s *Store) GetDoc(tenantID string) ([]byte, error) {
	var doc string
	err := s.db.QueryRow(
		`SELECT doc FROM onboarding_docs WHERE tenant_id = ?`, tenantID,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get doc %s: %w", tenantID, err)
	}
	return []byte(doc), nil
}

// #endregion get-doc

// #region update-doc

// UpdateDoc runs fn over the latest persisted document and upserts the
// result, all inside one transaction with the tenant's lock held. fn receives
// nil when no document exists yet; returning an error aborts with nothing
// written.
func (s *Store) UpdateDoc(tenantID string, fn func(doc []byte) ([]byte, error)) ([]byte, error) {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var cur []byte
	var docStr string
	err = tx.QueryRow(
		`SELECT doc FROM onboarding_docs WHERE tenant_id = ?`, tenantID,
	).Scan(&docStr)
	switch {
	case err == sql.ErrNoRows:
		cur = nil
	case err != nil:
		return nil, fmt.Errorf("read doc %s: %w", tenantID, err)
	default:
		cur = []byte(docStr)
	}

	next, err := fn(cur)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = tx.Exec(
		`INSERT INTO onboarding_docs (tenant_id, doc, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(tenant_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		tenantID, string(next), now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert doc %s: %w", tenantID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return next, nil
}

// #endregion update-doc
