package rows

// ID is the stable identifier of a row inside a Collection. Identifiers are
// assigned from original positions and survive filtering unchanged; removed
// rows leave gaps rather than renumbering the survivors.
type ID int

// Entry pairs a row with its identifier.
type Entry struct {
	ID  ID
	Row Row
}

// Collection is an ordered sequence of rows indexed by stable identifiers.
// Filtering never mutates a collection; it builds a new one containing only
// the surviving entries.
type Collection struct {
	entries []Entry
}

// NewCollection wraps each value via Wrap and assigns sequential identifiers
// starting at zero.
func NewCollection(values ...any) *Collection {
	c := &Collection{entries: make([]Entry, 0, len(values))}
	for i, v := range values {
		c.entries = append(c.entries, Entry{ID: ID(i), Row: Wrap(v)})
	}
	return c
}

// NewCollectionCapacity returns an empty collection with room for n entries.
func NewCollectionCapacity(n int) *Collection {
	return &Collection{entries: make([]Entry, 0, n)}
}

// Append adds an entry under an explicit identifier. It is the caller's
// responsibility to keep identifiers unique.
func (c *Collection) Append(id ID, row Row) {
	c.entries = append(c.entries, Entry{ID: id, Row: row})
}

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.entries) }

// Entries returns the entries in order. The slice is shared; callers must
// not modify it.
func (c *Collection) Entries() []Entry { return c.entries }

// Get returns the row stored under id.
func (c *Collection) Get(id ID) (Row, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e.Row, true
		}
	}
	return nil, false
}

// IDs returns the identifiers in order.
func (c *Collection) IDs() []ID {
	ids := make([]ID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Rows returns the raw row values in order, unwrapped via Value.
func (c *Collection) Rows() []any {
	out := make([]any, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Row.Value()
	}
	return out
}
