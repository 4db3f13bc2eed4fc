// Package encoding implements the value codec shared by rows and the
// persistence bridge: composite (list- or mapping-shaped) values travel as
// canonical JSON text, scalars travel unchanged.
package encoding

import (
	"encoding/json"
	"reflect"
)

// IsComposite reports whether v is list- or mapping-shaped. Byte slices are
// scalars here: they hold opaque data, not structure.
func IsComposite(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// Encode converts a composite value to its canonical JSON text and returns
// every other value unchanged. A composite that cannot be marshaled passes
// through as-is and surfaces later at the SQL bind.
func Encode(v any) any {
	if !IsComposite(v) {
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	return string(data)
}

// Decode attempts to parse v as JSON text and returns the parsed structure on
// success. On any failure, including non-string input, it returns v
// unchanged. Decode never fails: it must be safe on raw scalars coming
// straight out of the storage engine, which were never encoded.
//
// The flip side is that a plain string which happens to be valid JSON, such
// as "123", decodes to the value it spells. Callers storing such strings get
// the parsed form back.
func Decode(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return v
	}
	return parsed
}
