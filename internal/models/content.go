package models

// Content is the full set of landing copy rendered on one page.
type Content struct {
	FAQs         []FAQ         `json:"faqs"`
	Features     []Feature     `json:"features"`
	Stats        []Stat        `json:"stats"`
	Testimonials []Testimonial `json:"testimonials"`
}
