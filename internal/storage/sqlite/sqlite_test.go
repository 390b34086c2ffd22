package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath, "")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Load before save reports not found", func(t *testing.T) {
		_, err := store.Load(ctx)
		if err != storage.ErrNotFound {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Save then Load returns the same state", func(t *testing.T) {
		original := models.NewState()
		original.AppName = "Test Office"
		original.Participants = []models.Participant{{ID: "p1", Name: "Sara", Phone: "0912"}}
		original.Items = []models.Item{{ID: "i1", Name: "Bread", Price: 1000}}
		original.Expenses = []models.ExpenseRecord{
			{ID: "t1-p1", TransactionID: "t1", EmployeeID: "p1", EmployeeName: "Sara",
				Amount: 2500.0 / 3, Date: "1403/01/01", Description: "Bread (×2)"},
		}

		if err := store.Save(ctx, original); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		retrieved, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if retrieved.AppName != "Test Office" {
			t.Errorf("Expected app name 'Test Office', got '%s'", retrieved.AppName)
		}
		if len(retrieved.Expenses) != 1 || retrieved.Expenses[0].Amount != 2500.0/3 {
			t.Errorf("Expense amount not preserved: %+v", retrieved.Expenses)
		}
	})

	t.Run("Save overwrites the previous state", func(t *testing.T) {
		next := models.NewState()
		next.Theme = "forest"
		if err := store.Save(ctx, next); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		retrieved, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if retrieved.Theme != "forest" || len(retrieved.Participants) != 0 {
			t.Errorf("Expected overwritten state, got %+v", retrieved)
		}
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := New(dbPath, "office")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	state := models.NewState()
	state.AppName = "Persisted"
	if err := first.Save(ctx, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first.Close()

	// Migrations are idempotent on an existing database.
	second, err := New(dbPath, "office")
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer second.Close()

	retrieved, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if retrieved.AppName != "Persisted" {
		t.Errorf("Expected 'Persisted', got '%s'", retrieved.AppName)
	}

	other, err := New(dbPath, "another-key")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer other.Close()
	if _, err := other.Load(ctx); err != storage.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unused key, got %v", err)
	}
}
