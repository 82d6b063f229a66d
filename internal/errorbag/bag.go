// Package errorbag holds form validation messages keyed by field name.
package errorbag

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Bag is a set of validation messages per field. The zero value is not
// usable; call New. A Bag is safe for concurrent use.
type Bag struct {
	mu      sync.Mutex
	errors  map[string][]string
	subs    map[int]func(map[string][]string)
	nextSub int
}

func New() *Bag {
	return &Bag{
		errors: make(map[string][]string),
		subs:   make(map[int]func(map[string][]string)),
	}
}

// Subscribe registers fn to receive All() after every change.
func (b *Bag) Subscribe(fn func(map[string][]string)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Put replaces the messages for key. No messages clears the key.
func (b *Bag) Put(key string, messages ...string) {
	b.PutAll(map[string][]string{key: messages})
}

// PutAll replaces the messages for every key in errs.
func (b *Bag) PutAll(errs map[string][]string) {
	b.mu.Lock()
	for key, msgs := range errs {
		if len(msgs) == 0 {
			delete(b.errors, key)
			continue
		}
		b.errors[key] = append([]string(nil), msgs...)
	}
	notify := b.commitLocked()
	b.mu.Unlock()
	notify()
}

// Get returns the messages for key, or nil.
func (b *Bag) Get(key string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.errors[key]...)
}

func (b *Bag) Has(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.errors[key]) > 0
}

// First returns the first message for key and whether there is one.
func (b *Bag) First(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.errors[key]
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

func (b *Bag) Remove(keys ...string) {
	b.mu.Lock()
	for _, key := range keys {
		delete(b.errors, key)
	}
	notify := b.commitLocked()
	b.mu.Unlock()
	notify()
}

func (b *Bag) Clear() {
	b.mu.Lock()
	clear(b.errors)
	notify := b.commitLocked()
	b.mu.Unlock()
	notify()
}

// All returns a copy of every non-empty entry.
func (b *Bag) All() map[string][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allLocked()
}

// Keys returns the fields with messages in sorted order.
func (b *Bag) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.errors))
	for k := range b.errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *Bag) allLocked() map[string][]string {
	out := make(map[string][]string, len(b.errors))
	for k, v := range b.errors {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (b *Bag) commitLocked() func() {
	all := b.allLocked()
	subs := make([]func(map[string][]string), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(all)
		}
	}
}

// messages decodes either a single string or a list of strings.
type messages []string

func (m *messages) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*m = messages{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("messages must be a string or list of strings: %w", err)
	}
	*m = many
	return nil
}

// UnmarshalJSON merges a validation payload into the bag. Both a bare
// field map and one wrapped in an "errors" envelope are accepted, with each
// field holding a string or a list of strings.
func (b *Bag) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Errors map[string]messages `json:"errors"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Errors != nil {
		b.PutAll(toMap(envelope.Errors))
		return nil
	}

	var fields map[string]messages
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode validation errors: %w", err)
	}
	b.PutAll(toMap(fields))
	return nil
}

// MarshalJSON encodes the bag as a field map.
func (b *Bag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.All())
}

func toMap(in map[string]messages) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
