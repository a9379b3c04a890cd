package models

import "time"

type Stat struct {
	ID        int64     `json:"id"`
	Icon      string    `json:"icon"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	Gradient  string    `json:"gradient"`
	IsActive  string    `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatRequest struct {
	Icon      *string `json:"icon"`
	Value     string  `json:"value"`
	Label     string  `json:"label"`
	Gradient  *string `json:"gradient"`
	IsActive  string  `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}
