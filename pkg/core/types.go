package core

import (
	"github.com/kielby/sqrel/internal/encoding"
)

// FieldType is the closed set of field kinds a schema can declare.
type FieldType int

const (
	// TypeInteger holds whole numbers
	TypeInteger FieldType = iota
	// TypeFloat holds floating-point numbers
	TypeFloat
	// TypeText holds UTF-8 strings
	TypeText
	// TypeComposite holds structured list- or mapping-shaped values
	TypeComposite
)

// String returns the string representation of the field type
func (t FieldType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeText:
		return "TEXT"
	case TypeComposite:
		return "COMPOSITE"
	default:
		return "UNKNOWN"
	}
}

// validates reports whether v's runtime shape satisfies the declared kind.
// Composite accepts any list- or mapping-shaped value; the other kinds are
// strict, so an int does not satisfy TypeFloat and vice versa.
func (t FieldType) validates(v any) bool {
	switch t {
	case TypeInteger:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
	case TypeText:
		_, ok := v.(string)
		return ok
	case TypeComposite:
		return encoding.IsComposite(v)
	}
	return false
}

// Field is one named, typed column definition in a table's schema.
type Field struct {
	Name string
	Type FieldType
}
