package encoding

import (
	"reflect"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Run("ScalarsPassThrough", func(t *testing.T) {
		for _, v := range []any{42, 3.14, "hello", true, nil} {
			if got := Encode(v); !reflect.DeepEqual(got, v) {
				t.Errorf("Encode(%v) = %v, want unchanged", v, got)
			}
		}
	})

	t.Run("ListToJSON", func(t *testing.T) {
		got := Encode([]any{"a", "b"})
		if got != `["a","b"]` {
			t.Errorf("Encode list = %v, want [\"a\",\"b\"]", got)
		}
	})

	t.Run("MapToJSON", func(t *testing.T) {
		got := Encode(map[string]any{"k": float64(1)})
		if got != `{"k":1}` {
			t.Errorf("Encode map = %v, want {\"k\":1}", got)
		}
	})

	t.Run("EmptyComposites", func(t *testing.T) {
		if got := Encode([]any{}); got != "[]" {
			t.Errorf("Encode empty list = %v, want []", got)
		}
		if got := Encode(map[string]any{}); got != "{}" {
			t.Errorf("Encode empty map = %v, want {}", got)
		}
	})

	t.Run("BytesAreScalar", func(t *testing.T) {
		b := []byte{1, 2, 3}
		got := Encode(b)
		if !reflect.DeepEqual(got, b) {
			t.Errorf("Encode bytes = %v, want unchanged", got)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("RoundTripList", func(t *testing.T) {
		v := []any{"a", "b"}
		got := Decode(Encode(v))
		if !reflect.DeepEqual(got, v) {
			t.Errorf("Decode(Encode(%v)) = %v", v, got)
		}
	})

	t.Run("RoundTripMap", func(t *testing.T) {
		v := map[string]any{"name": "Alice", "scores": []any{float64(1), float64(2)}}
		got := Decode(Encode(v))
		if !reflect.DeepEqual(got, v) {
			t.Errorf("Decode(Encode(%v)) = %v", v, got)
		}
	})

	t.Run("RoundTripEmpty", func(t *testing.T) {
		for _, v := range []any{[]any{}, map[string]any{}, nil} {
			got := Decode(Encode(v))
			if !reflect.DeepEqual(got, v) {
				t.Errorf("Decode(Encode(%v)) = %v", v, got)
			}
		}
	})

	t.Run("NonTextIdentity", func(t *testing.T) {
		for _, v := range []any{42, 3.14, nil, true, int64(7)} {
			if got := Decode(v); !reflect.DeepEqual(got, v) {
				t.Errorf("Decode(%v) = %v, want unchanged", v, got)
			}
		}
	})

	t.Run("UnparsableTextIdentity", func(t *testing.T) {
		for _, s := range []string{"hello", "", "not json", "{broken"} {
			if got := Decode(s); got != s {
				t.Errorf("Decode(%q) = %v, want unchanged", s, got)
			}
		}
	})

	// A plain string that spells valid JSON decodes to the spelled value.
	// This ambiguity is part of the codec's contract, not an accident.
	t.Run("NumericStringParses", func(t *testing.T) {
		if got := Decode("123"); got != float64(123) {
			t.Errorf("Decode(\"123\") = %v (%T), want 123", got, got)
		}
		if got := Decode("true"); got != true {
			t.Errorf("Decode(\"true\") = %v, want true", got)
		}
	})
}

func TestIsComposite(t *testing.T) {
	composites := []any{[]any{}, []string{"a"}, [2]int{1, 2}, map[string]any{}, map[string]int{"a": 1}}
	for _, v := range composites {
		if !IsComposite(v) {
			t.Errorf("IsComposite(%v) = false, want true", v)
		}
	}
	scalars := []any{nil, 1, 1.5, "s", true, []byte("raw")}
	for _, v := range scalars {
		if IsComposite(v) {
			t.Errorf("IsComposite(%v) = true, want false", v)
		}
	}
}
