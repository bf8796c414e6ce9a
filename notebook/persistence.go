// Package notebook keeps the ordered assignment list and its persisted copy
// in step.
package notebook

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/stsysd/notebook/model"
	"github.com/stsysd/notebook/store"
)

// DefaultSlotKey is the key the whole assignment list is stored under.
const DefaultSlotKey = "assignments"

// Adapter reads and writes the complete assignment list to a single slot.
//
// Failures never reach the caller: Load degrades to an empty list and Save
// leaves the previously stored value in place. Both are logged.
type Adapter struct {
	store  store.SlotStore
	key    string
	logger *log.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithKey overrides the slot key.
func WithKey(key string) AdapterOption {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *log.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter creates an Adapter over s.
func NewAdapter(s store.SlotStore, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		store:  s,
		key:    DefaultSlotKey,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load returns the stored list, or an empty list when the slot is absent or
// does not decode.
func (a *Adapter) Load(ctx context.Context) []model.Assignment {
	data, err := a.store.Get(ctx, a.key)
	if errors.Is(err, model.ErrSlotNotFound) {
		return []model.Assignment{}
	}
	if err != nil {
		a.logger.Printf("notebook: failed to read slot %q: %v", a.key, err)
		return []model.Assignment{}
	}

	var assignments []model.Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		a.logger.Printf("notebook: failed to decode slot %q: %v", a.key, err)
		return []model.Assignment{}
	}
	if assignments == nil {
		return []model.Assignment{}
	}
	return assignments
}

// Save encodes the full list and overwrites the slot.
func (a *Adapter) Save(ctx context.Context, assignments []model.Assignment) {
	if assignments == nil {
		assignments = []model.Assignment{}
	}

	data, err := json.Marshal(assignments)
	if err != nil {
		a.logger.Printf("notebook: failed to encode %d assignments: %v", len(assignments), err)
		return
	}

	if err := a.store.Put(ctx, a.key, data); err != nil {
		a.logger.Printf("notebook: failed to write slot %q: %v", a.key, err)
	}
}
