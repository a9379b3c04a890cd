package view

import (
	"remitabeg-landing/internal/helper"
	"remitabeg-landing/internal/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TestimonialCard renders one star per rating point. Negative ratings
// render no stars.
func TestimonialCard(t models.Testimonial) g.Node {
	marks := helper.RatingMarks(t.Rating)
	stars := make([]g.Node, 0, marks)
	for i := 0; i < marks; i++ {
		stars = append(stars, Icon("star", "w-5 h-5 fill-yellow-400 text-yellow-400", g.Attr("data-rating-mark", "star")))
	}

	return h.Div(
		h.Class("bg-white/80 backdrop-blur-sm border border-green-200 rounded-2xl p-8 hover:shadow-xl transition-all duration-300 hover:-translate-y-1"),
		h.Div(h.Class("flex gap-1 mb-4"), g.Group(stars)),
		h.P(h.Class("text-gray-700 mb-6 leading-relaxed italic"), g.Text("\""+t.Content+"\"")),
		h.Div(
			h.Class("flex items-center gap-4"),
			h.Img(
				h.Src(t.Avatar),
				h.Alt(t.Name+" avatar"),
				h.Class("w-12 h-12 rounded-full object-cover"),
				h.Width("48"),
				h.Height("48"),
			),
			h.Div(
				h.Div(h.Class("font-bold text-gray-900"), g.Text(t.Name)),
				h.Div(h.Class("text-sm text-gray-600"), g.Text(t.Role)),
			),
		),
	)
}

func TestimonialsSection(testimonials []models.Testimonial) g.Node {
	cards := make([]g.Node, 0, len(testimonials))
	for _, t := range testimonials {
		cards = append(cards, TestimonialCard(t))
	}

	return h.Section(
		h.ID("testimonials"),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 bg-green-50/50"),
		liveRefresh("/partials/testimonials"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.Div(
				h.Class("text-center mb-16"),
				h.H2(h.Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Loved by Senders Worldwide")),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
