// Package accordion implements the single-selection model behind the FAQ
// accordion: at most one item is expanded at any time.
package accordion

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrIndexOutOfRange is returned when a toggle names an item that does not exist.
var ErrIndexOutOfRange = errors.New("accordion: index out of range")

// Selection is an optional index into an ordered item list.
// The zero value is "none".
type Selection struct {
	index int
	open  bool
}

// None returns a selection with nothing expanded.
func None() Selection {
	return Selection{}
}

// At returns a selection with index i expanded.
func At(i int) Selection {
	return Selection{index: i, open: true}
}

// Default is the initial selection for a list of n items: the first item
// expanded, or none when the list is empty.
func Default(n int) Selection {
	if n <= 0 {
		return None()
	}
	return At(0)
}

// Current returns the expanded index and whether one is set.
func (s Selection) Current() (int, bool) {
	return s.index, s.open
}

// IsNone reports whether nothing is expanded.
func (s Selection) IsNone() bool {
	return !s.open
}

// Expanded reports whether index i is the expanded one.
func (s Selection) Expanded(i int) bool {
	return s.open && s.index == i
}

// Toggle collapses i if it is open, otherwise expands i and collapses
// whatever was open before.
func Toggle(s Selection, i int) Selection {
	if s.Expanded(i) {
		return None()
	}
	return At(i)
}

// Clamp drops the selection if it no longer points into a list of n items.
func (s Selection) Clamp(n int) Selection {
	if s.open && (s.index < 0 || s.index >= n) {
		return None()
	}
	return s
}

func (s Selection) String() string {
	if !s.open {
		return "none"
	}
	return strconv.Itoa(s.index)
}

// MarshalJSON encodes the selection as an index or null.
func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.open {
		return []byte("null"), nil
	}
	return json.Marshal(s.index)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var idx *int
	if err := json.Unmarshal(data, &idx); err != nil {
		return err
	}
	if idx == nil {
		*s = None()
		return nil
	}
	*s = At(*idx)
	return nil
}
