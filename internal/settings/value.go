package settings

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the type a value was stored as.
type Kind string

const (
	KindBool    Kind = "bool"
	KindString  Kind = "string"
	KindFloat   Kind = "float"
	KindStrings Kind = "strings"
)

// Value is one stored setting.
type Value struct {
	kind Kind
	b    bool
	s    string
	f    float64
	list []string
}

// BoolValue wraps a bool.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// FloatValue wraps a number.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// StringsValue wraps a copy of a string list.
func StringsValue(v []string) Value { return Value{kind: KindStrings, list: slices.Clone(v)} }

// Kind returns the type the value was stored as.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v holds nothing.
func (v Value) IsZero() bool { return v.kind == "" }

// AsBool converts the value to a bool. Strings are parsed with
// strconv.ParseBool and floats are true when non-zero.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindString:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v.s))
		return parsed, err == nil
	case KindFloat:
		return v.f != 0, true
	default:
		return false, false
	}
}

// AsString converts the value to a string. A list converts only when it has
// exactly one element.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), true
	case KindStrings:
		if len(v.list) == 1 {
			return v.list[0], true
		}
		return "", false
	default:
		return "", false
	}
}

// AsFloat converts the value to a float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		return parsed, err == nil
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsStrings converts the value to a list. A single string becomes a
// one-element list; the returned slice is a copy.
func (v Value) AsStrings() ([]string, bool) {
	switch v.kind {
	case KindStrings:
		return slices.Clone(v.list), true
	case KindString:
		return []string{v.s}, true
	default:
		return nil, false
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindFloat:
		return v.f == other.f
	case KindStrings:
		return slices.Equal(v.list, other.list)
	default:
		return true
	}
}

// String renders the value for display.
func (v Value) String() string {
	if v.kind == KindStrings {
		return "[" + strings.Join(v.list, ", ") + "]"
	}
	s, _ := v.AsString()
	return s
}

func (v Value) encode() (string, error) {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindString:
		return v.s, nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case KindStrings:
		list := v.list
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return "", fmt.Errorf("encode list: %w", err)
		}
		return string(data), nil
	default:
		return "", ErrInvalidValue
	}
}

func decodeValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("decode bool %q: %w", text, err)
		}
		return BoolValue(b), nil
	case KindString:
		return StringValue(text), nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("decode float %q: %w", text, err)
		}
		return FloatValue(f), nil
	case KindStrings:
		var list []string
		if err := json.Unmarshal([]byte(text), &list); err != nil {
			return Value{}, fmt.Errorf("decode list: %w", err)
		}
		return Value{kind: KindStrings, list: list}, nil
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidValue, kind)
	}
}
