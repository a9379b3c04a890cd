package view

import (
	"remitabeg-landing/internal/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// liveRefresh makes a section re-fetch itself from url whenever the
// page-level content-updated event fires.
func liveRefresh(url string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-get", url),
		g.Attr("hx-trigger", ContentUpdatedTrigger),
		g.Attr("hx-swap", "outerHTML"),
	})
}

// ContentUpdatedTrigger is the htmx trigger the page script dispatches
// after a content change notification.
const ContentUpdatedTrigger = "content-updated from:body"

// StatsSection renders the statistics grid in the order given.
func StatsSection(stats []models.Stat) g.Node {
	cells := make([]g.Node, 0, len(stats))
	for _, s := range stats {
		cells = append(cells, statCell(s))
	}

	return h.Section(
		h.ID("stats"),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-b from-white to-green-50/50"),
		liveRefresh("/partials/stats"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.Div(h.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-8"), g.Group(cells)),
		),
	)
}

func statCell(s models.Stat) g.Node {
	return h.Div(
		h.Class("relative group"),
		g.Attr("data-stat", s.Label),
		h.Div(
			h.Class("bg-white/80 backdrop-blur-sm border border-green-200 rounded-2xl p-8 text-center transition-all duration-300 hover:shadow-xl hover:-translate-y-2"),
			h.Div(
				h.Class("inline-flex items-center justify-center w-16 h-16 bg-gradient-to-br "+s.Gradient+" rounded-xl text-white mb-4 group-hover:scale-110 transition-transform"),
				IconHandle(s.Icon, "w-8 h-8"),
			),
			h.Div(h.Class("text-4xl font-bold text-gray-900 mb-2"), g.Text(s.Value)),
			h.Div(h.Class("text-sm text-gray-600 font-medium"), g.Text(s.Label)),
		),
	)
}
