package core

import (
	"errors"
	"reflect"
	"testing"
)

var userFields = []Field{
	{Name: "name", Type: TypeText},
	{Name: "age", Type: TypeInteger},
}

func TestDatabase(t *testing.T) {
	t.Run("CreateAndGet", func(t *testing.T) {
		db := New("")
		created, err := db.Create("users", userFields)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		got, err := db.Get("users")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != created {
			t.Error("Get returned a different table than Create")
		}
	})

	t.Run("CreateDuplicate", func(t *testing.T) {
		db := New("")
		first, err := db.Create("x", userFields)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := db.Create("x", userFields); !errors.Is(err, ErrTableExists) {
			t.Errorf("duplicate Create = %v, want ErrTableExists", err)
		}
		got, err := db.Get("x")
		if err != nil || got != first {
			t.Error("first table no longer accessible after failed Create")
		}
	})

	t.Run("CreateWithBadSchema", func(t *testing.T) {
		db := New("")
		_, err := db.Create("bad", []Field{{Name: "a", Type: TypeText}, {Name: "a", Type: TypeText}})
		if !errors.Is(err, ErrDuplicateField) {
			t.Errorf("Create with duplicate fields = %v, want ErrDuplicateField", err)
		}
		if _, err := db.Get("bad"); !errors.Is(err, ErrTableNotFound) {
			t.Error("failed Create still registered the table")
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		db := New("")
		if _, err := db.Get("nope"); !errors.Is(err, ErrTableNotFound) {
			t.Errorf("Get missing = %v, want ErrTableNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := New("")
		if _, err := db.Create("users", userFields); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := db.Delete("users"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := db.Get("users"); !errors.Is(err, ErrTableNotFound) {
			t.Error("deleted table still accessible")
		}
		if err := db.Delete("users"); !errors.Is(err, ErrTableNotFound) {
			t.Errorf("second Delete = %v, want ErrTableNotFound", err)
		}
	})

	t.Run("TablesInCreationOrder", func(t *testing.T) {
		db := New("")
		for _, name := range []string{"c", "a", "b"} {
			if _, err := db.Create(name, nil); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}
		if err := db.Delete("a"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got := db.Tables(); !reflect.DeepEqual(got, []string{"c", "b"}) {
			t.Errorf("Tables = %v, want [c b]", got)
		}
	})

	t.Run("EmptyTableName", func(t *testing.T) {
		db := New("")
		if _, err := db.Create("", userFields); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Create(\"\") = %v, want ErrEmptyName", err)
		}
	})
}
