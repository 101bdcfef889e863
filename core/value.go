package core

import (
	"fmt"
	"strings"
)

// ValueKind enumerates the closed set of property value types.
type ValueKind int

const (
	// KindNumber is a float64 value.
	KindNumber ValueKind = iota

	// KindBool is a boolean value.
	KindBool

	// KindString is a text value.
	KindString

	// KindList is an ordered list of Values.
	KindList
)

// Value is a closed sum type for the properties carried by Components and
// interval data maps: a number, a bool, a string, or a list of Values.
// The zero Value is the number 0.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	str  string
	list []Value
}

// Num wraps a float64 as a Value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool wraps a bool as a Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Str wraps a string as a Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// List wraps an ordered list of Values as a single Value.
// The items are copied.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports which member of the sum the Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the numeric content, or 0 for non-number Values.
func (v Value) Float() float64 { return v.num }

// True returns the boolean content, or false for non-bool Values.
func (v Value) True() bool { return v.b }

// Text returns the string content, or "" for non-string Values.
func (v Value) Text() string { return v.str }

// Items returns a copy of the list content, or nil for non-list Values.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp
}

// IsZero reports whether the Value is "empty": the number 0, false, the
// empty string, or an empty list. Empty values are skipped by Component
// equality and summaries.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindNumber:
		return v.num == 0
	case KindBool:
		return !v.b
	case KindString:
		return v.str == ""
	default:
		return len(v.list) == 0
	}
}

// Equal reports deep equality of two Values, including kind.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.str == other.str
	default:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	}
}

// String renders the Value for display and summaries.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return trimFloat(v.num)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.str
	default:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
}

// Accumulate coerces both Values to lists and concatenates them. It is used
// when two interval data maps are combined and a key collides.
func Accumulate(a, b Value) Value {
	items := make([]Value, 0, 2)
	if a.kind == KindList {
		items = append(items, a.list...)
	} else {
		items = append(items, a)
	}
	if b.kind == KindList {
		items = append(items, b.list...)
	} else {
		items = append(items, b)
	}
	return Value{kind: KindList, list: items}
}

// trimFloat formats a float without a trailing ".0" for integral values.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
