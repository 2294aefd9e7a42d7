package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/record"
	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/logger"
)

// DBFile is the database file name inside the data directory.
const DBFile = "findr.db"

// Ensure Store implements the interface.
var _ driven.FindrStorage = (*Store)(nil)

// Store is a SQLite-backed driven.FindrStorage.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database in dataDir and applies
// pending migrations. If dataDir is empty, defaults to ~/.findr.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".findr")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite",
		dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations and records their versions.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("applied migration %s", name)
	}

	return nil
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// Load reads the candidate book. A database that has never been saved to is
// domain.ErrNotFound so that first launch behaves like a missing JSON file.
func (s *Store) Load(ctx context.Context) (*domain.Findr, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var saved int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM meta WHERE key = 'saved'").Scan(&saved); err != nil {
		return nil, fmt.Errorf("reading save marker: %w", err)
	}
	if saved == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNotFound)
	}

	var r record.Findr
	r.Tags, err = loadTags(ctx, tx)
	if err != nil {
		return nil, err
	}
	r.Candidates, err = loadCandidates(ctx, tx)
	if err != nil {
		return nil, err
	}
	return r.ToDomain()
}

func loadTags(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT name FROM tags ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

func loadCandidates(ctx context.Context, tx *sql.Tx) ([]record.Candidate, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT c.id, c.name, c.phone, c.email, c.address, c.stage, COALESCE(ct.tag_name, '')
		FROM candidates c
		LEFT JOIN candidate_tags ct ON ct.candidate_id = c.id
		ORDER BY c.position, ct.tag_name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	candidates := []record.Candidate{}
	lastID := int64(-1)
	for rows.Next() {
		var (
			id                                 int64
			name, phone, email, address, stage string
			tag                                string
		)
		if err := rows.Scan(&id, &name, &phone, &email, &address, &stage, &tag); err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		if id != lastID {
			candidates = append(candidates, record.Candidate{
				Name: &name, Phone: &phone, Email: &email, Address: &address, Stage: &stage,
				Tags: []string{},
			})
			lastID = id
		}
		if tag != "" {
			last := &candidates[len(candidates)-1]
			last.Tags = append(last.Tags, tag)
		}
	}
	return candidates, rows.Err()
}

// Save replaces the stored candidate book with data in one transaction.
func (s *Store) Save(ctx context.Context, data domain.ReadOnlyFindr) error {
	r := record.FromFindr(data)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		"DELETE FROM candidate_tags",
		"DELETE FROM candidates",
		"DELETE FROM tags",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing tables: %w", err)
		}
	}

	for i, name := range r.Tags {
		if _, err := tx.ExecContext(ctx, "INSERT INTO tags (position, name) VALUES (?, ?)", i, name); err != nil {
			return fmt.Errorf("inserting tag %s: %w", name, err)
		}
	}

	for i, c := range r.Candidates {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO candidates (position, name, phone, email, address, stage)
			VALUES (?, ?, ?, ?, ?, ?)
		`, i, *c.Name, *c.Phone, *c.Email, *c.Address, *c.Stage)
		if err != nil {
			return fmt.Errorf("inserting candidate %s: %w", *c.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading candidate id: %w", err)
		}
		for _, tag := range c.Tags {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO candidate_tags (candidate_id, tag_name) VALUES (?, ?)", id, tag); err != nil {
				return fmt.Errorf("linking candidate %s to tag %s: %w", *c.Name, tag, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('saved', CURRENT_TIMESTAMP)"); err != nil {
		return fmt.Errorf("writing save marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	logger.Debug("saved %d candidates and %d tags to %s", len(r.Candidates), len(r.Tags), s.path)
	return nil
}
