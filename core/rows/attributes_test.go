package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	attrs := NewAttributes().
		Set("name", "al").
		Set("status", []string{"active", "pending"}).
		Set("age", 30)

	assert.Equal(t, 3, attrs.Len())
	assert.Equal(t, []string{"name", "status", "age"}, attrs.Names())

	v, ok := attrs.Get("status")
	assert.True(t, ok)
	assert.Equal(t, []string{"active", "pending"}, v)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestAttributes_SetKeepsFirstPosition(t *testing.T) {
	attrs := NewAttributes().
		Set("a", 1).
		Set("b", 2).
		Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, attrs.Names())
	v, _ := attrs.Get("a")
	assert.Equal(t, 3, v)
}

type fakeProvider struct {
	safe   []string
	values map[string]any
}

func (p *fakeProvider) SafeAttributes() []string { return p.safe }
func (p *fakeProvider) Attribute(name string) any {
	return p.values[name]
}

func TestFromProvider(t *testing.T) {
	p := &fakeProvider{
		safe:   []string{"name", "city"},
		values: map[string]any{"name": "al", "city": "Nairobi", "secret": "x"},
	}

	attrs := FromProvider(p)
	assert.Equal(t, []string{"name", "city"}, attrs.Names())

	v, ok := attrs.Get("city")
	assert.True(t, ok)
	assert.Equal(t, "Nairobi", v)

	// Attributes the provider did not declare safe never enter the set.
	_, ok = attrs.Get("secret")
	assert.False(t, ok)
}
