package models

import "time"

// FAQ is one question/answer pair shown in the landing accordion.
type FAQ struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsActive  string    `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	IsActive  string `json:"is_active"`
	SortOrder *int   `json:"sort_order"`
}
