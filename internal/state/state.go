package state

import "github.com/rook-computer/watchface/internal/clock"

// Scheme is the two-valued color theme of the face.
type Scheme int

const (
	DARK Scheme = iota
	LIGHT
)

func (s Scheme) String() string {
	if s == LIGHT {
		return "light"
	}
	return "dark"
}

// Toggle returns the other scheme.
func (s Scheme) Toggle() Scheme {
	if s == LIGHT {
		return DARK
	}
	return LIGHT
}

// ParseScheme accepts "dark" or "light".
func ParseScheme(name string) (Scheme, bool) {
	switch name {
	case "dark":
		return DARK, true
	case "light":
		return LIGHT, true
	}
	return DARK, false
}

type State struct {
	Scheme Scheme
	Flips  int // scheme changes since the store was created
}

// Store holds the face scheme. It is owned by the render loop and is not
// safe for concurrent use.
type Store struct {
	state State
}

func NewStore() *Store {
	return &Store{state: State{Scheme: DARK}}
}

func (store *Store) Snapshot() State {
	return store.state
}

func (store *Store) Scheme() Scheme {
	return store.state.Scheme
}

func (store *Store) SetScheme(scheme Scheme) {
	store.state.Scheme = scheme
}

// Tick is called once per timer interval with a fresh clock sample and
// flips the scheme when the sampled second is 0. A timer that skips the
// zero second misses that minute's flip; it is not caught up later.
func (store *Store) Tick(sample clock.Sample) bool {
	if sample.Second != 0 {
		return false
	}
	store.state.Scheme = store.state.Scheme.Toggle()
	store.state.Flips++
	return true
}
