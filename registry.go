package datavalidation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds custom rule handlers and their default message templates.
//
// A Registry is safe for concurrent lookups. Registration is expected at
// startup; registering while validations are running must be serialized by
// the caller. A name already used by a built-in rule overrides the built-in
// for every validator using this registry.
//
// Names are matched ignoring case when no exact match exists.
type Registry struct {
	mu       sync.RWMutex
	rules    map[string]RuleFunc
	messages map[string]string
	// lowercased name -> registered name
	ruleNames    map[string]string
	messageNames map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:        map[string]RuleFunc{},
		messages:     map[string]string{},
		ruleNames:    map[string]string{},
		messageNames: map[string]string{},
	}
}

// Register adds fn under name, replacing any previous handler.
func (r *Registry) Register(name string, fn RuleFunc) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return ErrInvalidRule
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = fn
	r.ruleNames[strings.ToLower(name)] = name
	return nil
}

// MustRegister is like Register but panics on error. It returns r for chaining.
func (r *Registry) MustRegister(name string, fn RuleFunc) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(fmt.Errorf("register %q: %w", name, err))
	}
	return r
}

// RegisterMessage sets the default message template for name. It is used
// when no override from Messages matches, ahead of the built-in defaults.
func (r *Registry) RegisterMessage(name, template string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[name] = template
	r.messageNames[strings.ToLower(name)] = name
}

// Lookup returns the handler registered under name. A nil registry holds nothing.
func (r *Registry) Lookup(name string) (RuleFunc, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.rules[name]; ok {
		return fn, true
	}
	fn, ok := r.rules[r.ruleNames[strings.ToLower(name)]]
	return fn, ok
}

// Message returns the default template registered for name.
func (r *Registry) Message(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.messages[name]; ok {
		return m, true
	}
	m, ok := r.messages[r.messageNames[strings.ToLower(name)]]
	return m, ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
