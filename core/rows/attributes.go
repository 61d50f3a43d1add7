package rows

// Attributes is the reference attribute set a filter pass compares rows
// against: an insertion-ordered mapping from attribute name to reference
// value. It is treated as read-only for the duration of a filter call.
type Attributes struct {
	names  []string
	values map[string]any
}

// NewAttributes returns an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores a reference value under name, keeping first-insertion order
// when a name is set more than once. It returns the receiver so calls can
// be chained.
func (a *Attributes) Set(name string, value any) *Attributes {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
	return a
}

// Get returns the reference value stored under name.
func (a *Attributes) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the attribute names in insertion order. The slice is
// shared; callers must not modify it.
func (a *Attributes) Names() []string { return a.names }

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.names) }

// Provider is the owning entity that supplies the default reference
// attribute set: the names it considers safe to filter by, and their
// current values. What "safe" means is entirely the provider's policy.
type Provider interface {
	SafeAttributes() []string
	Attribute(name string) any
}

// FromProvider materializes an attribute set from a provider, in the
// provider's safe-attribute order.
func FromProvider(p Provider) *Attributes {
	attrs := NewAttributes()
	for _, name := range p.SafeAttributes() {
		attrs.Set(name, p.Attribute(name))
	}
	return attrs
}
