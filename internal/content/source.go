// Package content supplies the landing copy (FAQs, features, stats and
// testimonials) to the page renderers.
package content

import (
	"context"
	"errors"

	"remitabeg-landing/internal/models"
)

// ErrNotFound reports a content section that does not exist, such as an
// unknown accordion id.
var ErrNotFound = errors.New("content: not found")

// Source loads the landing content snapshot.
type Source interface {
	Load(ctx context.Context) (models.Content, error)
}

// Static serves a fixed snapshot.
type Static struct {
	Content models.Content
}

func (s Static) Load(context.Context) (models.Content, error) {
	return s.Content, nil
}

// WithDefaults fills every empty section of c from the built-in copy.
func WithDefaults(c models.Content) models.Content {
	def := Default()
	if len(c.FAQs) == 0 {
		c.FAQs = def.FAQs
	}
	if len(c.Features) == 0 {
		c.Features = def.Features
	}
	if len(c.Stats) == 0 {
		c.Stats = def.Stats
	}
	if len(c.Testimonials) == 0 {
		c.Testimonials = def.Testimonials
	}
	return c
}
