package scan

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"github.com/hugr-lab/zenith-scan/formula"
)

func openDuckDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("DuckDB not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newDuckDBStore(t *testing.T) *DuckDBStore {
	t.Helper()

	store, err := NewDuckDBStore(context.Background(), openDuckDB(t), StoreConfig{Codec: newCodec(t)})
	if err != nil {
		t.Fatalf("NewDuckDBStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore(newCodec(t)) },
		"duckdb": func(t *testing.T) Store { return newDuckDBStore(t) },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("CRUD", func(t *testing.T) { testStoreCRUD(t, open(t)) })
			t.Run("Validation", func(t *testing.T) { testStoreValidation(t, open(t)) })
			t.Run("Concurrent", func(t *testing.T) { testStoreConcurrent(t, open(t)) })
		})
	}
}

func testStoreCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	liquid := &Definition{
		Name:        "Liquid",
		Description: "High volume, not an index",
		Criteria:    liquidCriteria(),
		Rank:        turnoverRank(),
	}
	if err := store.Save(ctx, liquid); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if liquid.ID == uuid.Nil {
		t.Fatal("Save should assign an ID")
	}
	if liquid.Version != 1 {
		t.Errorf("expected version 1, got %d", liquid.Version)
	}
	if liquid.Modified.IsZero() {
		t.Error("Save should set Modified")
	}

	got, err := store.Get(ctx, liquid.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Liquid" || got.Description != liquid.Description || got.Version != 1 {
		t.Errorf("unexpected definition %+v", got)
	}
	if !got.Modified.Equal(liquid.Modified) {
		t.Errorf("expected modified %v, got %v", liquid.Modified, got.Modified)
	}
	if !formula.Equal(got.Criteria, liquid.Criteria) || !formula.Equal(got.Rank, liquid.Rank) {
		t.Error("formulas changed in storage")
	}

	// Update bumps the version.
	liquid.Rank = nil
	liquid.Criteria = formula.NewAll()
	if err := store.Save(ctx, liquid); err != nil {
		t.Fatalf("Save update failed: %v", err)
	}
	if liquid.Version != 2 {
		t.Errorf("expected version 2, got %d", liquid.Version)
	}
	got, err = store.Get(ctx, liquid.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Version != 2 || got.Rank != nil || !formula.Equal(got.Criteria, formula.NewAll()) {
		t.Errorf("update not stored: %+v", got)
	}

	indices := &Definition{Name: "Indices", Criteria: formula.NewBooleanFieldEquals(formula.FieldIsIndex, true)}
	if err := store.Save(ctx, indices); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	defs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "Indices" || defs[1].Name != "Liquid" {
		t.Fatalf("expected [Indices Liquid], got %d definitions", len(defs))
	}

	if err := store.Delete(ctx, indices.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, indices.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, indices.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func testStoreValidation(t *testing.T, store Store) {
	ctx := context.Background()

	tests := []struct {
		name     string
		def      *Definition
		expected error
	}{
		{"nil", nil, ErrInvalidDefinition},
		{"no name", &Definition{Criteria: formula.NewAll()}, ErrInvalidDefinition},
		{"no criteria", &Definition{Name: "Empty"}, ErrInvalidDefinition},
		{"bad criteria", &Definition{
			Name:     "Bad",
			Criteria: formula.NewPriceSubFieldHasValue(formula.PriceSubFieldID(42)),
		}, ErrInvalidFormula},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Save(ctx, tt.def); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	defs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 0 {
		t.Errorf("invalid definitions must not be stored, got %d", len(defs))
	}
}

func testStoreConcurrent(t *testing.T, store Store) {
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			def := &Definition{Name: "Scan", Criteria: formula.NewFieldHasValue(formula.FieldCode)}
			if err := store.Save(ctx, def); err != nil {
				errs <- err
				return
			}
			if _, err := store.Get(ctx, def.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}

	defs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 10 {
		t.Errorf("expected 10 definitions, got %d", len(defs))
	}
}

func TestDuckDBStoreConfig(t *testing.T) {
	ctx := context.Background()
	db := openDuckDB(t)

	if _, err := NewDuckDBStore(ctx, nil, StoreConfig{}); err == nil {
		t.Error("expected error for nil database")
	}
	if _, err := NewDuckDBStore(ctx, db, StoreConfig{Table: "scans; DROP TABLE x"}); err == nil {
		t.Error("expected error for invalid table name")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store, err := NewDuckDBStore(ctx, db, StoreConfig{Table: "my_scans", Logger: logger})
	if err != nil {
		t.Fatalf("NewDuckDBStore failed: %v", err)
	}
	defer store.Close()

	def := &Definition{Name: "All", Criteria: formula.NewAll()}
	if err := store.Save(ctx, def); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM my_scans").Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
	if !strings.Contains(buf.String(), "Scan saved") {
		t.Errorf("expected save to be logged, got %q", buf.String())
	}

	// Reopening an existing table keeps its rows.
	again, err := NewDuckDBStore(ctx, db, StoreConfig{Table: "my_scans"})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer again.Close()
	if _, err := again.Get(ctx, def.ID); err != nil {
		t.Errorf("Get after reopen failed: %v", err)
	}
}
