package notebook

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/stsysd/notebook/model"
)

// Manager owns the ordered assignment list. Every mutation writes the whole
// list back through the Adapter before returning.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	assignments []model.Assignment
	adapter     *Adapter
}

// New loads the persisted list and returns a Manager holding it.
func New(ctx context.Context, adapter *Adapter) *Manager {
	return &Manager{
		assignments: adapter.Load(ctx),
		adapter:     adapter,
	}
}

// Assignments returns a copy of the list in display order.
func (m *Manager) Assignments() []model.Assignment {
	return slices.Clone(m.assignments)
}

// Len returns the number of assignments.
func (m *Manager) Len() int {
	return len(m.assignments)
}

// Add appends a to the end of the list and returns the stored record. A nil
// ID, or one already present in the list, is replaced with a new one.
func (m *Manager) Add(ctx context.Context, a model.Assignment) model.Assignment {
	for a.ID == uuid.Nil || m.contains(a.ID) {
		a.ID = uuid.New()
	}
	m.assignments = append(m.assignments, a)
	m.save(ctx)
	return a
}

// Create builds a new assignment and appends it.
func (m *Manager) Create(ctx context.Context, course, description string, due time.Time) model.Assignment {
	return m.Add(ctx, model.NewAssignment(course, description, due))
}

// DeleteAt removes the assignments at the given positions. Positions refer to
// the list before deletion; out-of-range and repeated positions are ignored.
func (m *Manager) DeleteAt(ctx context.Context, positions ...int) {
	drop := model.NewPositions(positions...).Normalize(len(m.assignments))

	kept := make([]model.Assignment, 0, len(m.assignments)-len(drop))
	for i, a := range m.assignments {
		if _, found := slices.BinarySearch(drop, i); !found {
			kept = append(kept, a)
		}
	}
	m.assignments = kept
	m.save(ctx)
}

// Move relocates the assignments at from so that they form a block starting
// at index to of the resulting list. Moved assignments keep their relative
// order, as do the others. to is clamped to the valid range.
func (m *Manager) Move(ctx context.Context, from []int, to int) {
	picked := model.NewPositions(from...).Normalize(len(m.assignments))

	moved := make([]model.Assignment, 0, len(picked))
	rest := make([]model.Assignment, 0, len(m.assignments)-len(picked))
	for i, a := range m.assignments {
		if _, found := slices.BinarySearch(picked, i); found {
			moved = append(moved, a)
		} else {
			rest = append(rest, a)
		}
	}

	to = max(0, min(to, len(rest)))
	m.assignments = slices.Insert(rest, to, moved...)
	m.save(ctx)
}

func (m *Manager) contains(id uuid.UUID) bool {
	return slices.ContainsFunc(m.assignments, func(a model.Assignment) bool {
		return a.ID == id
	})
}

func (m *Manager) save(ctx context.Context) {
	m.adapter.Save(ctx, m.assignments)
}
