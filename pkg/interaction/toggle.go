package interaction

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// phase tags the toggle's state machine: Settled(value) or
// Pending(value, prior). The prior value is captured per toggle call, so
// a failed persist always reverts to exactly the state that call flipped
// away from, even if other toggles raced in between.
type phase int

const (
	settled phase = iota
	pending
)

// PersistFunc persists the new boolean value remotely.
type PersistFunc func(ctx context.Context, value bool) error

// ChangeFunc observes local state changes. For toggles without a counter
// the count is always 0.
type ChangeFunc func(value bool, count int)

// Toggle is an optimistic boolean (optionally boolean+counter) bound to a
// remote persist call. The local flip and the OnChange notification happen
// before any network activity; a persist failure rolls both back silently.
type Toggle struct {
	mu      sync.Mutex
	phase   phase
	value   bool
	count   int
	counted bool

	persist  PersistFunc
	onChange ChangeFunc
	log      *logrus.Logger
}

// NewLikeToggle builds a like toggle with a visible counter, persisting
// through the client's like endpoint for the item.
func NewLikeToggle(c *Client, item Item, initialLiked bool, initialLikes int, onChange ChangeFunc) *Toggle {
	return &Toggle{
		value:   initialLiked,
		count:   initialLikes,
		counted: true,
		persist: func(ctx context.Context, value bool) error {
			return c.SetLiked(ctx, item, value)
		},
		onChange: onChange,
		log:      c.log,
	}
}

// NewSaveToggle builds a save toggle (no counter), persisting through the
// client's save endpoint for the item.
func NewSaveToggle(c *Client, item Item, initialSaved bool, onChange ChangeFunc) *Toggle {
	return &Toggle{
		value: initialSaved,
		persist: func(ctx context.Context, value bool) error {
			return c.SetSaved(ctx, item, value)
		},
		onChange: onChange,
		log:      c.log,
	}
}

// NewToggle builds a toggle over an arbitrary persist function. withCount
// enables the ±1 counter adjustment on each flip.
func NewToggle(initial bool, initialCount int, withCount bool, persist PersistFunc, onChange ChangeFunc) *Toggle {
	return &Toggle{
		value:    initial,
		count:    initialCount,
		counted:  withCount,
		persist:  persist,
		onChange: onChange,
		log:      logrus.StandardLogger(),
	}
}

// State returns the current local value and count.
func (t *Toggle) State() (value bool, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.count
}

// Pending reports whether a persist call is in flight.
func (t *Toggle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase == pending
}

// Toggle flips the local state, notifies the observer, then persists the
// new value. On persist failure the captured pre-toggle state is restored
// and the failure is only logged; no error surfaces to the caller.
//
// Rapid repeated calls are not serialized: each negates whatever the
// current value is at call time and, on failure, reverts to the prior it
// captured.
func (t *Toggle) Toggle(ctx context.Context) {
	t.mu.Lock()
	prior := t.value
	priorCount := t.count

	t.value = !prior
	if t.counted {
		if t.value {
			t.count = priorCount + 1
		} else {
			t.count = priorCount - 1
		}
	}
	newValue, newCount := t.value, t.count
	t.phase = pending
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(newValue, newCount)
	}

	err := t.persist(ctx, newValue)

	t.mu.Lock()
	if err != nil {
		t.value = prior
		t.count = priorCount
	}
	t.phase = settled
	revertedValue, revertedCount := t.value, t.count
	t.mu.Unlock()

	if err != nil {
		if t.log != nil {
			t.log.WithError(err).Warn("toggle persist failed, reverted local state")
		}
		if t.onChange != nil {
			t.onChange(revertedValue, revertedCount)
		}
	}
}
