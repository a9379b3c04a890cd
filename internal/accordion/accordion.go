package accordion

import (
	"fmt"

	"remitabeg-landing/internal/models"
)

// Accordion is one accordion instance: a fixed ordered list of items and the
// selection over them. Each instance owns its own selection.
type Accordion struct {
	ID        string
	items     []models.FAQ
	selection Selection
}

// New builds an accordion with the default selection (first item open).
func New(id string, items []models.FAQ) *Accordion {
	return &Accordion{
		ID:        id,
		items:     items,
		selection: Default(len(items)),
	}
}

// WithSelection builds an accordion restored from a previously saved
// selection. Indices that no longer fit the item list read as none.
func WithSelection(id string, items []models.FAQ, s Selection) *Accordion {
	a := New(id, items)
	a.selection = s.Clamp(len(items))
	return a
}

func (a *Accordion) Items() []models.FAQ {
	return a.items
}

func (a *Accordion) Len() int {
	return len(a.items)
}

func (a *Accordion) Selection() Selection {
	return a.selection
}

// Toggle applies a toggle on index i. The selection is unchanged when i is
// out of range.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(a.items))
	}
	a.selection = Toggle(a.selection, i)
	return nil
}

func (a *Accordion) Expanded(i int) bool {
	return a.selection.Expanded(i)
}

// ExpandedIndices returns the expanded indices; always of length 0 or 1.
func (a *Accordion) ExpandedIndices() []int {
	if i, ok := a.selection.Current(); ok {
		return []int{i}
	}
	return []int{}
}
