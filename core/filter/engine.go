package filter

import (
	"fmt"
	"sync"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/asaidimu/go-sift/core/rows"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options control a single filter pass.
type Options struct {
	// Normalize reshapes each surviving row into a Mapping keyed by the
	// attributes that were actually resolved for it.
	Normalize bool
	// IgnoreUndefined skips attributes a row cannot resolve instead of
	// treating them as a mismatch or an error.
	IgnoreUndefined bool
	// Comparators are per-call overrides, consulted before the engine's
	// registered comparators.
	Comparators map[string]Comparator
}

// Option mutates the per-call Options.
type Option func(*Options)

// WithNormalize toggles survivor normalization. The default is true.
func WithNormalize(normalize bool) Option {
	return func(o *Options) { o.Normalize = normalize }
}

// WithIgnoreUndefined toggles the undefined-attribute policy. The default
// is true: attributes a row lacks are skipped for that row. When false, an
// object row missing an attribute aborts the call, and a mapping row reads
// the missing key as nil.
func WithIgnoreUndefined(ignore bool) Option {
	return func(o *Options) { o.IgnoreUndefined = ignore }
}

// WithComparator registers a comparator for this call only, shadowing any
// comparator registered on the engine under the same attribute.
func WithComparator(attribute string, cmp Comparator) Option {
	return func(o *Options) {
		if o.Comparators == nil {
			o.Comparators = make(map[string]Comparator)
		}
		o.Comparators[attribute] = cmp
	}
}

// Engine filters row collections against reference attribute sets. An
// engine carries a comparator registry and an event bus; the filter pass
// itself touches no shared mutable state, so independent collections may be
// filtered concurrently from one engine.
type Engine struct {
	comparators   map[string]Comparator
	mu            sync.RWMutex
	logger        *zap.Logger
	bus           *events.TypedEventBus[Event]
	subscriptions map[string]*SubscriptionInfo
	subMu         sync.RWMutex
}

// New creates an Engine. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bus, err := events.NewTypedEventBus[Event](events.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("could not initialize event bus: %w", err)
	}
	return &Engine{
		comparators:   make(map[string]Comparator),
		logger:        logger,
		bus:           bus,
		subscriptions: make(map[string]*SubscriptionInfo),
	}, nil
}

// RegisterComparator registers a comparator for one attribute. It replaces
// any comparator previously registered under the same name.
func (e *Engine) RegisterComparator(attribute string, cmp Comparator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.comparators[attribute] = cmp
	e.logger.Info("Registered comparator", zap.String("attribute", attribute))
}

// RegisterComparators registers multiple comparators from a map.
func (e *Engine) RegisterComparators(comparators map[string]Comparator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for attribute, cmp := range comparators {
		e.comparators[attribute] = cmp
		e.logger.Info("Registered comparator", zap.String("attribute", attribute))
	}
}

// Filter evaluates every row of c against the reference attribute set and
// returns a new collection holding only the rows no attribute disqualified.
// Survivor identifiers are unchanged; removed rows leave gaps. With
// normalization enabled (the default), each survivor that resolved at least
// one attribute is replaced by a Mapping of exactly the resolved
// attributes. A nil or empty attribute set disqualifies nothing.
func (e *Engine) Filter(c *rows.Collection, attrs *rows.Attributes, opts ...Option) (*rows.Collection, error) {
	options := Options{Normalize: true, IgnoreUndefined: true}
	for _, opt := range opts {
		opt(&options)
	}

	invocationID := uuid.New().String()
	startTime := time.Now()
	e.emitEvent(createEvent(FilterStart, invocationID, c.Len(), nil, nil, nil, nil, startTime))

	// Inputs are captured once per call; later registrations do not affect
	// a pass already in flight.
	comparators := e.snapshotComparators(options.Comparators)

	out := rows.NewCollectionCapacity(c.Len())
	for _, entry := range c.Entries() {
		kept, normalized, attribute, err := evaluateRow(entry, attrs, comparators, &options)
		if err != nil {
			errStr := err.Error()
			e.emitEvent(createEvent(FilterFailed, invocationID, c.Len(), nil, attribute, nil, &errStr, startTime))
			return nil, err
		}
		if !kept {
			id := entry.ID
			e.emitEvent(createEvent(RowDropped, invocationID, c.Len(), nil, attribute, &id, nil, startTime))
			continue
		}
		row := entry.Row
		if options.Normalize && len(normalized) > 0 {
			row = normalized
		}
		out.Append(entry.ID, row)
	}

	survivors := out.Len()
	e.emitEvent(createEvent(FilterSuccess, invocationID, c.Len(), &survivors, nil, nil, nil, startTime))
	e.logger.Debug("Rows remaining after filter",
		zap.Int("input", c.Len()),
		zap.Int("output", survivors))
	return out, nil
}

// FilterUsing filters c against the reference attributes supplied by the
// owning entity's safe attributes.
func (e *Engine) FilterUsing(c *rows.Collection, p rows.Provider, opts ...Option) (*rows.Collection, error) {
	return e.Filter(c, rows.FromProvider(p), opts...)
}

// snapshotComparators merges the registered comparators with per-call
// overrides into a map private to one filter pass.
func (e *Engine) snapshotComparators(overrides map[string]Comparator) map[string]Comparator {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]Comparator, len(e.comparators)+len(overrides))
	for name, cmp := range e.comparators {
		out[name] = cmp
	}
	for name, cmp := range overrides {
		out[name] = cmp
	}
	return out
}

// evaluateRow runs one row through every attribute of the reference set,
// short-circuiting on the first disqualifying attribute. It returns the
// normalized mapping of resolved attributes and, when the row is dropped,
// the attribute that disqualified it.
func evaluateRow(entry rows.Entry, attrs *rows.Attributes, comparators map[string]Comparator, options *Options) (bool, rows.Mapping, *string, error) {
	var normalized rows.Mapping
	if attrs == nil {
		return true, nil, nil, nil
	}
	for _, name := range attrs.Names() {
		reference, _ := attrs.Get(name)
		value, ok := entry.Row.Attribute(name)
		if !ok {
			if options.IgnoreUndefined {
				continue
			}
			if entry.Row.Kind() == rows.KindObject {
				return false, nil, StringPtr(name), &UndefinedAttributeError{Attribute: name, RowID: entry.ID}
			}
			// A mapping reads a missing key as nil; this is a pass-through
			// value, not a filter signal.
			value = nil
		}
		if options.Normalize {
			if normalized == nil {
				normalized = make(rows.Mapping, attrs.Len())
			}
			normalized[name] = value
		}

		kept, err := matchAttribute(name, reference, value, entry.Row, comparators)
		if err != nil {
			return false, nil, StringPtr(name), fmt.Errorf("comparator for attribute %q failed: %w", name, err)
		}
		if !kept {
			return false, nil, StringPtr(name), nil
		}
	}
	return true, normalized, nil, nil
}

// matchAttribute decides one attribute for one row: a comparator claiming
// the attribute is consulted first and any non-deferring verdict is final;
// only then are the built-in rules applied to the resolved value.
func matchAttribute(name string, reference, value any, row rows.Row, comparators map[string]Comparator) (bool, error) {
	if cmp, ok := comparators[name]; ok {
		verdict, err := cmp(name, reference, row)
		if err != nil {
			return false, err
		}
		switch verdict {
		case VerdictKeep:
			return true, nil
		case VerdictDisqualify:
			return false, nil
		}
	}
	return defaultMatch(reference, value), nil
}
