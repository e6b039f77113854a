package store

import (
	"errors"
	"testing"

	"go-restaurant-operations/models"
)

func newRegistryWithTable(t *testing.T, number int) *TableRegistry {
	t.Helper()
	registry := NewTableRegistry()
	if _, err := registry.AddTable(models.Table{Number: number, Capacity: 4}); err != nil {
		t.Fatalf("add table failed: %v", err)
	}
	return registry
}

func TestAddTable(t *testing.T) {
	registry := newRegistryWithTable(t, 1)

	table, err := registry.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if table.Status != models.TableStatusFree {
		t.Errorf("new table should be FREE, got %s", table.Status)
	}

	if _, err := registry.AddTable(models.Table{Number: 1, Capacity: 2}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got: %v", err)
	}
	if _, err := registry.AddTable(models.Table{Number: 2, Capacity: 0}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero capacity, got: %v", err)
	}
}

// Every allowed and forbidden transition of the table state machine.
func TestTableStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from string
		op   string
		ok   bool
	}{
		{"reserve free", models.TableStatusFree, "reserve", true},
		{"reserve reserved", models.TableStatusReserved, "reserve", false},
		{"reserve occupied", models.TableStatusOccupied, "reserve", false},
		{"occupy free (walk-in)", models.TableStatusFree, "occupy", true},
		{"occupy reserved", models.TableStatusReserved, "occupy", true},
		{"occupy occupied", models.TableStatusOccupied, "occupy", false},
		{"release free", models.TableStatusFree, "release", true},
		{"release reserved", models.TableStatusReserved, "release", true},
		{"release occupied", models.TableStatusOccupied, "release", true},
	}

	for _, tt := range tests {
		registry := newRegistryWithTable(t, 1)

		// Drive the table into the starting status.
		switch tt.from {
		case models.TableStatusReserved:
			registry.Reserve(1)
		case models.TableStatusOccupied:
			registry.Occupy(1)
		}

		var err error
		switch tt.op {
		case "reserve":
			_, err = registry.Reserve(1)
		case "occupy":
			_, err = registry.Occupy(1)
		case "release":
			_, err = registry.Release(1)
		}

		if tt.ok && err != nil {
			t.Errorf("%s: expected success, got: %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidState) {
			t.Errorf("%s: expected ErrInvalidState, got: %v", tt.name, err)
		}
	}
}

func TestReserveUnknownTable(t *testing.T) {
	registry := NewTableRegistry()
	if _, err := registry.Reserve(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestListFree(t *testing.T) {
	registry := NewTableRegistry()
	for number := 1; number <= 3; number++ {
		if _, err := registry.AddTable(models.Table{Number: number, Capacity: 4}); err != nil {
			t.Fatalf("add table %d failed: %v", number, err)
		}
	}
	if _, err := registry.Occupy(2); err != nil {
		t.Fatalf("occupy failed: %v", err)
	}

	free := registry.ListFree()
	if len(free) != 2 {
		t.Fatalf("expected 2 free tables, got %d", len(free))
	}
	if free[0].Number != 1 || free[1].Number != 3 {
		t.Errorf("expected tables 1 and 3 free, got %d and %d", free[0].Number, free[1].Number)
	}

	if _, err := registry.Release(2); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if got := len(registry.ListFree()); got != 3 {
		t.Errorf("expected 3 free tables after release, got %d", got)
	}
}
