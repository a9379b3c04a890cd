package content

import (
	"context"
	"database/sql"
	"fmt"

	"remitabeg-landing/internal/models"
)

// MySQL reads active landing content from the faqs, features, stats and
// testimonials tables.
type MySQL struct {
	DB *sql.DB
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{DB: db}
}

func (m *MySQL) Load(ctx context.Context) (models.Content, error) {
	var c models.Content
	var err error

	if c.FAQs, err = m.FAQs(ctx); err != nil {
		return c, err
	}
	if c.Features, err = m.Features(ctx); err != nil {
		return c, err
	}
	if c.Stats, err = m.Stats(ctx); err != nil {
		return c, err
	}
	if c.Testimonials, err = m.Testimonials(ctx); err != nil {
		return c, err
	}
	return c, nil
}

func (m *MySQL) FAQs(ctx context.Context) ([]models.FAQ, error) {
	rows, err := m.DB.QueryContext(ctx, `
		SELECT id, question, answer, is_active, sort_order, created_at, updated_at
		FROM faqs
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var faq models.FAQ
		if err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.IsActive,
			&faq.SortOrder,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

func (m *MySQL) Features(ctx context.Context) ([]models.Feature, error) {
	rows, err := m.DB.QueryContext(ctx, `
		SELECT id, icon, title, description, gradient, is_active, sort_order, created_at, updated_at
		FROM features
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	features := []models.Feature{}
	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(
			&f.ID,
			&f.Icon,
			&f.Title,
			&f.Description,
			&f.Gradient,
			&f.IsActive,
			&f.SortOrder,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (m *MySQL) Stats(ctx context.Context) ([]models.Stat, error) {
	rows, err := m.DB.QueryContext(ctx, `
		SELECT id, icon, value, label, gradient, is_active, sort_order, created_at, updated_at
		FROM stats
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	stats := []models.Stat{}
	for rows.Next() {
		var s models.Stat
		if err := rows.Scan(
			&s.ID,
			&s.Icon,
			&s.Value,
			&s.Label,
			&s.Gradient,
			&s.IsActive,
			&s.SortOrder,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (m *MySQL) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := m.DB.QueryContext(ctx, `
		SELECT id, name, role, content, avatar, rating, is_active, sort_order, created_at, updated_at
		FROM testimonials
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Role,
			&t.Content,
			&t.Avatar,
			&t.Rating,
			&t.IsActive,
			&t.SortOrder,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
