package cymple

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalizeParams(t *testing.T) {
	t.Run("Nil passes through", func(t *testing.T) {
		canon, err := canonicalizeParams(nil)
		require.NoError(t, err)
		require.Nil(t, canon)
	})

	t.Run("Scalars pass through", func(t *testing.T) {
		canon, err := canonicalizeParams(map[string]any{"n": 1, "s": "x"})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"n": 1, "s": "x"}, canon)
	})

	t.Run("Slices lower to []any", func(t *testing.T) {
		canon, err := canonicalizeParams(map[string]any{"ids": []int{1, 2}})
		require.NoError(t, err)
		require.Equal(t, []any{float64(1), float64(2)}, canon["ids"])
	})

	t.Run("Structs lower to map[string]any", func(t *testing.T) {
		type person struct {
			Name string `json:"name"`
		}
		canon, err := canonicalizeParams(map[string]any{"p": person{Name: "Bob"}})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"name": "Bob"}, canon["p"])
	})
}
