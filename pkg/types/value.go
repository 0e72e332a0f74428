package types

import "fmt"

// Kind identifies the variant held by a Value.
type Kind int

// The four legal parameter kinds. Relational stores commonly lack a native
// boolean type, so booleans are bound as integer 0/1.
const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

// Value is a tagged union over the parameter kinds accepted by the
// executor. The zero Value is NULL.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Null returns the NULL Value.
func Null() Value { return Value{} }

// Number returns a Value holding a double-precision number.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text returns a Value holding a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool returns a Value holding a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Arg returns the database/sql bind argument for v: nil for NULL, float64
// for numbers, string for text (the driver copies the bytes), and int64
// 0/1 for booleans.
func (v Value) Arg() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		if v.b {
			return int64(1)
		}
		return int64(0)
	default:
		return nil
	}
}

// String renders v for logs and error messages.
func (v Value) String() string {
	if v.kind == KindNull {
		return "NULL"
	}
	return fmt.Sprint(v.Arg())
}

// FromAny converts a dynamic value into a Value. Every parameter position
// must be deterministically bound, so a value outside the legal variants
// fails with ErrUnsupportedParameter instead of being skipped.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case string:
		return Text(t), nil
	case bool:
		return Bool(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedParameter, x)
	}
}

// FromAnySlice converts a parameter sequence via FromAny, failing on the
// first unsupported element.
func FromAnySlice(xs []any) ([]Value, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	vals := make([]Value, len(xs))
	for i, x := range xs {
		v, err := FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
