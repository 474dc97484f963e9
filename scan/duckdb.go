package scan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

// DefaultTable is the table used when StoreConfig.Table is empty.
const DefaultTable = "scans"

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// StoreConfig configures a DuckDBStore.
type StoreConfig struct {
	// Table is the name of the definitions table.
	// OPTIONAL: Uses DefaultTable if empty. Must be a lower case identifier.
	Table string

	// Codec encodes formulas for storage.
	// OPTIONAL: If nil, the store creates and owns one.
	Codec *Codec

	// Logger for store operations.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// DuckDBStore persists scan definitions in a DuckDB table.
// It relies on database/sql pooling and is safe for concurrent use.
type DuckDBStore struct {
	db        *sql.DB
	table     string
	codec     *Codec
	ownsCodec bool
	logger    *slog.Logger
}

// NewDuckDBStore creates the definitions table if it does not exist and
// returns a store over it. The caller keeps ownership of db.
func NewDuckDBStore(ctx context.Context, db *sql.DB, cfg StoreConfig) (*DuckDBStore, error) {
	if db == nil {
		return nil, errors.New("scan: nil database")
	}

	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("scan: invalid table name %q", table)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &DuckDBStore{
		db:     db,
		table:  table,
		codec:  cfg.Codec,
		logger: logger,
	}
	if s.codec == nil {
		codec, err := NewCodec(logger)
		if err != nil {
			return nil, err
		}
		s.codec = codec
		s.ownsCodec = true
	}

	ddl := `CREATE TABLE IF NOT EXISTS ` + table + ` (
		id UUID PRIMARY KEY,
		name VARCHAR NOT NULL,
		description VARCHAR NOT NULL,
		criteria BLOB NOT NULL,
		rank BLOB,
		version INTEGER NOT NULL,
		modified TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create %s table: %w", table, err)
	}

	logger.Debug("Scan store ready", "table", table)
	return s, nil
}

// Close releases the codec if the store created it. The database is not closed.
func (s *DuckDBStore) Close() error {
	if s.ownsCodec {
		return s.codec.Close()
	}
	return nil
}

// Save implements Store. The version read and the write run in one
// transaction; a concurrent save of the same ID fails with a conflict
// instead of reusing a version.
func (s *DuckDBStore) Save(ctx context.Context, def *Definition) (err error) {
	rec, err := encode(s.codec, def)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT version FROM `+s.table+` WHERE id = CAST(? AS UUID)`,
		rec.id.String(),
	).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		current = 0
	case err != nil:
		return fmt.Errorf("failed to read scan version: %w", err)
	}

	rec.version = current + 1
	rec.modified = now()

	if current == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+s.table+` (id, name, description, criteria, rank, version, modified)
			VALUES (CAST(? AS UUID), ?, ?, ?, ?, ?, ?)`,
			rec.id.String(), rec.name, rec.description, rec.criteria, nullBlob(rec.rank), rec.version, rec.modified,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE `+s.table+`
			SET name = ?, description = ?, criteria = ?, rank = ?, version = ?, modified = ?
			WHERE id = CAST(? AS UUID)`,
			rec.name, rec.description, rec.criteria, nullBlob(rec.rank), rec.version, rec.modified, rec.id.String(),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to save scan: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scan: %w", err)
	}

	rec.apply(def)
	s.logger.Debug("Scan saved",
		"id", rec.id,
		"name", rec.name,
		"version", rec.version,
		"criteria_bytes", len(rec.criteria),
	)
	return nil
}

// Get implements Store.
func (s *DuckDBStore) Get(ctx context.Context, id uuid.UUID) (*Definition, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT CAST(id AS VARCHAR), name, description, criteria, rank, version, modified
		FROM `+s.table+` WHERE id = CAST(? AS UUID)`,
		id.String(),
	)

	rec, err := scanStored(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scan %s: %w", id, err)
	}
	return rec.decode(s.codec)
}

// List implements Store.
func (s *DuckDBStore) List(ctx context.Context) ([]*Definition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT CAST(id AS VARCHAR), name, description, criteria, rank, version, modified
		FROM `+s.table+` ORDER BY name, CAST(id AS VARCHAR)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var defs []*Definition
	for rows.Next() {
		rec, err := scanStored(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read scan: %w", err)
		}
		def, err := rec.decode(s.codec)
		if err != nil {
			s.logger.Warn("Stored scan has invalid formula", "id", rec.id, "error", err)
			return nil, err
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return defs, nil
}

// Delete implements Store.
func (s *DuckDBStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM `+s.table+` WHERE id = CAST(? AS UUID)`,
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete scan %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete scan %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.logger.Debug("Scan deleted", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStored(row rowScanner) (*stored, error) {
	var (
		rec stored
		id  string
	)
	if err := row.Scan(&id, &rec.name, &rec.description, &rec.criteria, &rec.rank, &rec.version, &rec.modified); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	rec.id = parsed
	rec.modified = rec.modified.UTC()
	return &rec, nil
}

// nullBlob maps an absent rank formula to SQL NULL.
func nullBlob(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
