package models

import "time"

// Testimonial - Rating = jumlah bintang yang dirender.
type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Avatar    string    `json:"avatar"`
	Rating    int       `json:"rating"`
	IsActive  string    `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TestimonialRequest - Role dan Avatar opsional, "" mengosongkan kolom.
type TestimonialRequest struct {
	Name      string  `json:"name"`
	Role      *string `json:"role"`
	Content   string  `json:"content"`
	Avatar    *string `json:"avatar"`
	Rating    *int    `json:"rating"`
	IsActive  string  `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}
