package models

import "time"

// Feature - input untuk feature card. Icon berisi nama icon terdaftar
// (contoh "zap") atau teks biasa seperti emoji.
type Feature struct {
	ID          int64     `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Gradient    string    `json:"gradient"`
	IsActive    string    `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeatureRequest - field pointer opsional: nil = tidak dikirim,
// "" = dikosongkan.
type FeatureRequest struct {
	Icon        *string `json:"icon"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Gradient    *string `json:"gradient"`
	IsActive    string  `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}
