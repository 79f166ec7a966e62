package storage

import (
	"context"
	"path/filepath"
	"testing"

	"outgo/internal/model"
)

func TestMigrate_Idempotent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	// createTestStore already migrated once; a second run is a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	version, err := store.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("schema version failed: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("version = %d, want %d", version, ExpectedSchemaVersion)
	}
}

func TestMigrate_PreservesDataAcrossReopens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	expense := testExpense("persists", 1234, model.CategoryHousing, date(2024, 1, 1))
	id, err := store.InsertExpense(ctx, &expense)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Reopening and re-migrating an existing database must not touch data.
	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.Migrate(ctx); err != nil {
		t.Fatalf("re-migrate failed: %v", err)
	}

	got, err := reopened.GetExpenseByID(ctx, id)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if got.Name != "persists" || got.AmountCents != 1234 {
		t.Errorf("data lost across reopen: %+v", got)
	}
}
