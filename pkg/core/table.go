package core

import (
	"fmt"
)

// Predicate selects rows for Find and DeleteRow. A nil Predicate matches
// every row.
type Predicate func(*Row) bool

// Table is a named, ordered schema plus its row collection. Every row added
// through AddRow carries exactly the schema's field names; rows reconstructed
// by other means (schema edits, Row.AddField) may drift, which is documented
// behavior rather than an invariant the table repairs.
type Table struct {
	name   string
	fields []Field
	rows   []*Row
}

// NewTable creates an empty table with no fields and no rows.
func NewTable(name string) *Table {
	return &Table{name: name}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Fields returns a copy of the schema in declaration order.
func (t *Table) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Len returns the number of rows currently in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// AddField appends one field definition to the schema. Existing rows are not
// backfilled: reading the new field from a pre-existing row fails with
// ErrFieldNotFound until the row is given a value via Row.AddField.
func (t *Table) AddField(name string, fieldType FieldType) error {
	if name == "" {
		return wrapError("addField", ErrEmptyName)
	}
	if t.field(name) != nil {
		return wrapError("addField", fmt.Errorf("%w: %q", ErrDuplicateField, name))
	}
	t.fields = append(t.fields, Field{Name: name, Type: fieldType})
	return nil
}

// AddFields appends field definitions in the given order.
func (t *Table) AddFields(fields []Field) error {
	for _, f := range fields {
		if err := t.AddField(f.Name, f.Type); err != nil {
			return err
		}
	}
	return nil
}

// DeleteFields removes the named fields from the schema and prunes matching
// keys from every existing row. Unknown names are no-ops, not errors.
func (t *Table) DeleteFields(names ...string) {
	doomed := make(map[string]bool, len(names))
	for _, name := range names {
		doomed[name] = true
	}

	kept := t.fields[:0]
	for _, f := range t.fields {
		if !doomed[f.Name] {
			kept = append(kept, f)
		}
	}
	t.fields = kept

	for _, r := range t.rows {
		for _, name := range names {
			r.deleteField(name)
		}
	}
}

// AddRow validates the supplied values against the schema and appends a new
// row. The add is atomic: every check runs before anything is appended, so a
// failing call leaves the table unmodified.
//
// It fails with ErrSchemaMismatch if the value count differs from the field
// count, ErrUnknownField if a name is absent from the schema, and
// ErrTypeMismatch if a value's runtime shape disagrees with its field's
// declared type.
func (t *Table) AddRow(values map[string]any) error {
	if len(values) != len(t.fields) {
		return wrapError("addRow", fmt.Errorf("%w: got %d values, schema has %d fields",
			ErrSchemaMismatch, len(values), len(t.fields)))
	}

	for name, value := range values {
		f := t.field(name)
		if f == nil {
			return wrapError("addRow", fmt.Errorf("%w: %q", ErrUnknownField, name))
		}
		if !f.Type.validates(value) {
			return wrapError("addRow", fmt.Errorf("%w: field %q wants %s, got %T",
				ErrTypeMismatch, name, f.Type, value))
		}
	}

	t.rows = append(t.rows, NewRow(values))
	return nil
}

// DeleteRow removes every row the predicate matches and returns how many
// were removed. A nil predicate removes all rows.
func (t *Table) DeleteRow(pred Predicate) int {
	kept := t.rows[:0]
	for _, r := range t.rows {
		if pred != nil && !pred(r) {
			kept = append(kept, r)
		}
	}
	removed := len(t.rows) - len(kept)
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = kept
	return removed
}

// Find returns the rows the predicate matches, in insertion order. A nil
// predicate matches everything. A positive limit truncates the result to the
// first limit matches; limit 0 means unbounded.
func (t *Table) Find(pred Predicate, limit int) []*Row {
	var matched []*Row
	for _, r := range t.rows {
		if pred == nil || pred(r) {
			matched = append(matched, r)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched
}

// field returns the schema entry for name, or nil.
func (t *Table) field(name string) *Field {
	for i := range t.fields {
		if t.fields[i].Name == name {
			return &t.fields[i]
		}
	}
	return nil
}
