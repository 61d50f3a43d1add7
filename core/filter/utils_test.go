package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{"int", 10, 10.0, true},
		{"int8", int8(5), 5.0, true},
		{"int64", int64(100), 100.0, true},
		{"uint", uint(7), 7.0, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 2.5, 2.5, true},
		{"numeric string", "123.45", 123.45, true},
		{"non-numeric string", "abc", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ToFloat64(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, f)
			}
		})
	}
}

func TestPtrHelpers(t *testing.T) {
	s := StringPtr("x")
	assert.Equal(t, "x", *s)

	i := Int64Ptr(42)
	assert.Equal(t, int64(42), *i)
}
