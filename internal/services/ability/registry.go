package ability

import (
	"sync"
)

// HandlerRegistry maps ability keys to their scripted behavior. The
// service consults it on every Activate and Deactivate; abilities without
// an entry fall back to plain state flipping.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewHandlerRegistry creates an empty handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string]Handler),
	}
}

// Register stores a handler under its ability key. Registering the same
// key again replaces the previous handler.
func (r *HandlerRegistry) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[handler.Key()] = handler
}

// Get looks up the handler for an ability key
func (r *HandlerRegistry) Get(key string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[key]
	return handler, ok
}
