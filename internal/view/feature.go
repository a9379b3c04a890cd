package view

import (
	"remitabeg-landing/internal/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FeatureCard renders a single feature. Inputs are echoed as given.
func FeatureCard(f models.Feature) g.Node {
	return h.Div(
		h.Class("group bg-white/60 backdrop-blur-sm border border-green-200 hover:border-green-400 rounded-2xl p-8 transition-all duration-300 hover:shadow-2xl hover:-translate-y-2 hover:bg-white/80"),
		h.Div(
			h.Class("w-16 h-16 "+f.Gradient+" rounded-xl flex items-center justify-center mb-6 text-4xl group-hover:scale-110 transition-transform duration-300"),
			IconHandle(f.Icon, "w-8 h-8"),
		),
		h.H3(h.Class("text-xl font-bold text-gray-900 mb-3"), g.Text(f.Title)),
		h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(f.Description)),
	)
}

// FeaturesSection renders the feature grid. It reloads itself from
// /partials/features when the page receives content-updated.
func FeaturesSection(features []models.Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for _, f := range features {
		cards = append(cards, FeatureCard(f))
	}

	return h.Section(
		h.ID("features"),
		h.Class("py-20 px-4 sm:px-6 lg:px-8"),
		liveRefresh("/partials/features"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.Div(
				h.Class("text-center mb-16"),
				h.H2(h.Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Why RemitAbeg?")),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
