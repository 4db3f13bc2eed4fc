package core

import (
	"fmt"

	"github.com/kielby/sqrel/internal/encoding"
)

// Row holds one record's values keyed by field name. A row is free-standing:
// it carries no reference to its table and performs no schema checks of its
// own; validation happens at the Table boundary. Values are stored in encoded
// form (composites as canonical JSON text) and decoded on every read.
type Row struct {
	values map[string]any
}

// NewRow constructs a row from raw values, encoding each one.
func NewRow(values map[string]any) *Row {
	r := &Row{values: make(map[string]any, len(values))}
	for name, v := range values {
		r.values[name] = encoding.Encode(v)
	}
	return r
}

// Get returns the decoded value of the named field. It fails with
// ErrFieldNotFound if this row does not carry the field.
func (r *Row) Get(name string) (any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, wrapError("get", fmt.Errorf("%w: %q", ErrFieldNotFound, name))
	}
	return encoding.Decode(v), nil
}

// GetAll returns a fresh mapping of every field to its decoded value.
func (r *Row) GetAll() map[string]any {
	out := make(map[string]any, len(r.values))
	for name, v := range r.values {
		out[name] = encoding.Decode(v)
	}
	return out
}

// AddField inserts or overwrites a field on this row, encoding the value.
// No schema check is made; keeping the row consistent with its table's
// schema is the caller's business.
func (r *Row) AddField(name string, value any) {
	r.values[name] = encoding.Encode(value)
}

// deleteField removes the named field if present.
func (r *Row) deleteField(name string) {
	delete(r.values, name)
}
