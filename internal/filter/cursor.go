package filter

import "pokedex-service/internal/domain"

const (
	// DefaultInitialVisible is the window shown before any "load more".
	DefaultInitialVisible = 24
	// DefaultStep is how many more items each "load more" reveals.
	DefaultStep = 12
)

// Cursor truncates a filtered result to its first N items and grows N by a
// fixed step. It is view state, not a filter: changing any filter resets it.
type Cursor struct {
	initial int
	step    int
	visible int
}

// NewCursor builds a cursor with the given initial window and step
// (non-positive values fall back to the defaults).
func NewCursor(initial, step int) *Cursor {
	if initial <= 0 {
		initial = DefaultInitialVisible
	}
	if step <= 0 {
		step = DefaultStep
	}
	return &Cursor{initial: initial, step: step, visible: initial}
}

// Visible reports the current window size.
func (c *Cursor) Visible() int {
	return c.visible
}

// Window slices items to the current window.
func (c *Cursor) Window(items []domain.Summary) []domain.Summary {
	if len(items) <= c.visible {
		return items
	}
	return items[:c.visible]
}

// HasMore reports whether more filtered items remain beyond the window.
func (c *Cursor) HasMore(total int) bool {
	return c.visible < total
}

// Advance grows the window by one step, clamped to total. Returns whether
// anything new became visible.
func (c *Cursor) Advance(total int) bool {
	if !c.HasMore(total) {
		return false
	}
	next := c.visible + c.step
	if next > total {
		next = total
	}
	c.visible = next
	return true
}

// Reset shrinks the window back to the initial size.
func (c *Cursor) Reset() {
	c.visible = c.initial
}
