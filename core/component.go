package core

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
)

// Component is an externally-defined property bag describing interval
// content, e.g. {"lithology": "sandstone", "colour": "grey"}. It is a value
// type: copy freely, compare with Equal.
//
// Keys are kept in sorted order for deterministic iteration and summaries.
type Component struct {
	keys  []string
	props map[string]Value
}

// NewComponent builds a Component from a property map. The map is copied;
// keys are stored sorted. A nil map yields the empty Component.
func NewComponent(props map[string]Value) Component {
	if len(props) == 0 {
		return Component{}
	}
	c := Component{
		keys:  make([]string, 0, len(props)),
		props: make(map[string]Value, len(props)),
	}
	for k, v := range props {
		c.keys = append(c.keys, k)
		c.props[k] = v
	}
	sort.Strings(c.keys)
	return c
}

// Get returns the value for key and whether the key is present.
func (c Component) Get(key string) (Value, bool) {
	v, ok := c.props[key]
	return v, ok
}

// Set stores key=value, adding the key in sorted position if new.
func (c *Component) Set(key string, v Value) {
	if c.props == nil {
		c.props = make(map[string]Value, 1)
	}
	if _, ok := c.props[key]; !ok {
		i := sort.SearchStrings(c.keys, key)
		c.keys = append(c.keys, "")
		copy(c.keys[i+1:], c.keys[i:])
		c.keys[i] = key
	}
	c.props[key] = v
}

// Len returns the number of properties.
func (c Component) Len() int { return len(c.keys) }

// Empty reports whether the Component has no properties at all.
func (c Component) Empty() bool { return len(c.keys) == 0 }

// Keys returns a copy of the sorted property keys.
func (c Component) Keys() []string {
	cp := make([]string, len(c.keys))
	copy(cp, c.keys)
	return cp
}

// Copy returns a deep copy of the Component.
func (c Component) Copy() Component {
	if c.Empty() {
		return Component{}
	}
	props := make(map[string]Value, len(c.props))
	for k, v := range c.props {
		props[k] = v
	}
	return Component{keys: c.Keys(), props: props}
}

// Equal compares two Components for value equality.
//
// Numeric and list properties are ignored, empty values are dropped, and
// keys and string values are case-folded, so
// {"lithology": "Sandstone", "porosity": 0.3} equals
// {"LITHOLOGY": "sandstone"}.
func (c Component) Equal(other Component) bool {
	s := c.comparable()
	o := other.comparable()
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		if o[k] != v {
			return false
		}
	}
	return true
}

// comparable reduces the Component to the case-folded string and bool
// entries that participate in equality.
func (c Component) comparable() map[string]string {
	out := make(map[string]string, len(c.keys))
	for _, k := range c.keys {
		v := c.props[k]
		if v.IsZero() {
			continue
		}
		switch v.Kind() {
		case KindString:
			out[strings.ToLower(k)] = strings.ToLower(v.Text())
		case KindBool:
			out[strings.ToLower(k)] = "true"
		}
	}
	return out
}

// Summary returns the property values joined with commas, in key order,
// skipping empty values, with the first letter capitalized:
//
//	NewComponent(map[string]Value{
//	    "colour": Str("red"), "grainsize": Str("vf-f"),
//	    "lithology": Str("sandstone"),
//	}).Summary()  // "Red, vf-f, sandstone"
//
// The empty Component summarizes to "".
func (c Component) Summary() string {
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		if v := c.props[k]; !v.IsZero() {
			parts = append(parts, v.String())
		}
	}
	s := strings.Join(parts, ", ")
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// JSON returns the property map as a JSON object. Lists become JSON arrays.
func (c Component) JSON() (string, error) {
	m := make(map[string]interface{}, len(c.keys))
	for _, k := range c.keys {
		m[k] = jsonValue(c.props[k])
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func jsonValue(v Value) interface{} {
	switch v.Kind() {
	case KindNumber:
		return v.Float()
	case KindBool:
		return v.True()
	case KindString:
		return v.Text()
	default:
		items := v.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = jsonValue(item)
		}
		return out
	}
}
