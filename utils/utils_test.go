package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructToMap(t *testing.T) {
	type inner struct {
		Detail string `json:"detail"`
	}
	type record struct {
		ID     string `json:"id"`
		Count  int    `json:"count"`
		Nested inner  `json:"nested"`
	}

	t.Run("struct value", func(t *testing.T) {
		m, err := StructToMap(record{ID: "abc", Count: 2, Nested: inner{Detail: "x"}})
		require.NoError(t, err)
		assert.Equal(t, "abc", m["id"])
		assert.Equal(t, float64(2), m["count"]) // numbers round-trip as float64
		assert.Equal(t, map[string]any{"detail": "x"}, m["nested"])
	})

	t.Run("pointer to struct", func(t *testing.T) {
		m, err := StructToMap(&record{ID: "def"})
		require.NoError(t, err)
		assert.Equal(t, "def", m["id"])
	})

	t.Run("nil pointer", func(t *testing.T) {
		var r *record
		_, err := StructToMap(r)
		assert.Error(t, err)
	})

	t.Run("non-struct", func(t *testing.T) {
		_, err := StructToMap(42)
		assert.Error(t, err)
	})
}
