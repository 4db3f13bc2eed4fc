package sqrel

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kielby/sqrel/pkg/core"
)

func TestOpenAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facade.db")
	ctx := context.Background()

	db := Open(path, WithLogger(core.NopLogger()))
	users, err := db.Create("users", []core.Field{
		{Name: "name", Type: core.TypeText},
		{Name: "age", Type: core.TypeInteger},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := users.AddRow(map[string]any{"name": "Alice", "age": 30}); err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}
	if err := db.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened := Open(path)
	if err := reopened.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := reopened.Tables(); !reflect.DeepEqual(got, []string{"users"}) {
		t.Fatalf("Tables = %v, want [users]", got)
	}
	loaded, err := reopened.Get("users")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	match := loaded.Find(func(r *core.Row) bool {
		v, _ := r.Get("name")
		return v == "Alice"
	}, 0)
	if len(match) != 1 {
		t.Fatalf("Find returned %d rows, want 1", len(match))
	}
	if age, _ := match[0].Get("age"); age != int64(30) {
		t.Errorf("age = %v, want 30", age)
	}
}

func TestDelete(t *testing.T) {
	db := Open("")
	if _, err := db.Create("t", nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := db.Delete("t"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(db.Tables()) != 0 {
		t.Errorf("Tables = %v, want empty", db.Tables())
	}
}
