package filter

import (
	"github.com/google/uuid"
)

// emitEvent is a helper method to emit events
func (e *Engine) emitEvent(event Event) {
	if e.bus != nil {
		e.bus.Emit(string(event.Type), event)
	}
}

// RegisterSubscription subscribes a callback to one engine event type and
// returns an identifier for later unregistration.
func (e *Engine) RegisterSubscription(options RegisterSubscriptionOptions) string {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	unsubscribe := e.bus.Subscribe(string(options.Event), options.Callback)
	callbackID := uuid.New().String()

	e.subscriptions[callbackID] = &SubscriptionInfo{
		Event:       options.Event,
		Unsubscribe: unsubscribe,
		Label:       options.Label,
		Description: options.Description,
	}
	return callbackID
}

// UnregisterSubscription removes a subscription registered earlier. Unknown
// identifiers are ignored.
func (e *Engine) UnregisterSubscription(id string) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	info := e.subscriptions[id]
	if info != nil {
		info.Unsubscribe()
		delete(e.subscriptions, id)
	}
}

// Subscriptions returns all active engine-scoped subscriptions.
func (e *Engine) Subscriptions() []SubscriptionInfo {
	e.subMu.RLock()
	defer e.subMu.RUnlock()
	out := make([]SubscriptionInfo, 0, len(e.subscriptions))
	for _, info := range e.subscriptions {
		out = append(out, *info)
	}
	return out
}
