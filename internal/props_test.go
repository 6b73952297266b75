package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropsFormat(t *testing.T) {
	t.Run("Empty props render empty", func(t *testing.T) {
		require.Equal(t, "", Props{}.Format("=", ", ", true))
		require.Equal(t, "", Props(nil).Format("=", ", ", true))
	})

	t.Run("Node-style rendering", func(t *testing.T) {
		props := Props{{"name", "Bob"}, {"age", 20}}
		require.Equal(t, `name : "Bob", age : 20`, props.Format(":", ", ", true))
	})

	t.Run("Filter-style rendering", func(t *testing.T) {
		filters := Props{{"n.name", "value"}, {"n.age", 20}}
		require.Equal(t, `n.name = "value" AND n.age = 20`, filters.Format("=", " AND ", true))
	})

	t.Run("Insertion order is preserved", func(t *testing.T) {
		props := Props{{"b", 2}, {"a", 1}, {"c", 3}}
		require.Equal(t, "b = 2, a = 1, c = 3", props.Format("=", ", ", true))
	})

	t.Run("Boolean operator is inserted verbatim", func(t *testing.T) {
		filters := Props{{"x", 1}, {"y", 2}}
		require.Equal(t, "x = 1 OR y = 2", filters.Format("=", " OR ", true))
	})
}

func TestFormatValue(t *testing.T) {
	t.Run("Strings are quoted when escaping", func(t *testing.T) {
		require.Equal(t, `"Alice"`, FormatValue("Alice", true))
	})

	t.Run("Embedded quotes pass through verbatim", func(t *testing.T) {
		require.Equal(t, `"say "hi""`, FormatValue(`say "hi"`, true))
	})

	t.Run("Numbers and booleans stay unquoted", func(t *testing.T) {
		require.Equal(t, "20", FormatValue(20, true))
		require.Equal(t, "20.5", FormatValue(20.5, true))
		require.Equal(t, "true", FormatValue(true, true))
		require.Equal(t, "false", FormatValue(false, true))
	})

	t.Run("Escape off renders raw", func(t *testing.T) {
		require.Equal(t, `n.name + "!"`, FormatValue(`n.name + "!"`, false))
		require.Equal(t, "42", FormatValue(42, false))
	})

	t.Run("Unsupported values panic", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			require.ErrorIs(t, err, ErrUnsupportedValue)
		}()
		FormatValue(struct{}{}, true)
	})

	t.Run("Nil values panic", func(t *testing.T) {
		require.Panics(t, func() { FormatValue(nil, true) })
	})
}

func TestMappingDefaultAlias(t *testing.T) {
	require.Equal(t, "name", Mapping{Name: "n.name", Alias: "name"}.DefaultAlias())
	require.Equal(t, "n_name", Mapping{Name: "n.name"}.DefaultAlias())
	require.Equal(t, "n", Mapping{Name: "n"}.DefaultAlias())
}
