package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ErrUnsupportedValue is the cause of the panic raised when a property
// value cannot be rendered as Cypher text.
var ErrUnsupportedValue = errors.New("unsupported property value")

type (
	// Prop is a single property name/value pair.
	Prop struct {
		Key   string
		Value any
	}

	// Props is an ordered set of properties. Order is preserved verbatim in
	// the rendered output, so two equal Props always render identically.
	Props []Prop

	// Mapping pairs a queried name with the alias it is projected as. An
	// empty alias defaults to the name with property accessors flattened
	// (`.` becomes `_`).
	Mapping struct {
		Name  string
		Alias string
	}
)

// Format renders the properties as
//
//	key1 <cmp> value1<bool>key2 <cmp> value2 ...
//
// The boolean operator is inserted verbatim; callers supply surrounding
// spaces where they want them. An empty Props renders as "".
func (p Props) Format(comparisonOperator, booleanOperator string, escape bool) string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, prop := range p {
		parts[i] = prop.Key + " " + comparisonOperator + " " + FormatValue(prop.Value, escape)
	}
	return strings.Join(parts, booleanOperator)
}

// FormatValue renders a single property value. With escape set, strings
// are wrapped in double quotes verbatim (embedded quotes must be
// pre-escaped by the caller) and numbers/booleans render unquoted.
// Without escape every value renders as its raw string form.
//
// Values outside the string/number/boolean domain panic with
// [ErrUnsupportedValue].
func FormatValue(value any, escape bool) string {
	s, err := cast.ToStringE(value)
	if err != nil || value == nil {
		panic(fmt.Errorf("%w: cannot render %T", ErrUnsupportedValue, value))
	}
	if !escape {
		return s
	}
	switch value.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return s
	default:
		return `"` + s + `"`
	}
}

// DefaultAlias is the alias used when a Mapping does not name one.
func (m Mapping) DefaultAlias() string {
	if m.Alias != "" {
		return m.Alias
	}
	return strings.ReplaceAll(m.Name, ".", "_")
}
