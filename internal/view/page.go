package view

import (
	"strconv"
	"time"

	"remitabeg-landing/internal/accordion"
	"remitabeg-landing/internal/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

// contentUpdatesScript listens on the content websocket and asks htmx to
// refresh the live sections when an admin edits content.
const contentUpdatesScript = `(function(){
var proto = location.protocol === "https:" ? "wss://" : "ws://";
var ws = new WebSocket(proto + location.host + "/ws/content");
ws.onmessage = function(e){
  try { var msg = JSON.parse(e.data); } catch (_) { return; }
  if (msg.type === "content_updated" && window.htmx) { htmx.trigger(document.body, "content-updated"); }
};
})();`

type PageData struct {
	Title   string
	Content models.Content
	FAQ     *accordion.Accordion
	Year    int
}

// Page renders the full landing document.
func Page(d PageData) g.Node {
	title := d.Title
	if title == "" {
		title = "RemitAbeg - Send money home in minutes"
	}
	year := d.Year
	if year == 0 {
		year = time.Now().Year()
	}
	var faq g.Node
	if d.FAQ != nil {
		faq = FAQSection(d.FAQ)
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src(tailwindCDN)),
				h.Script(h.Src(htmxCDN)),
			),
			h.Body(
				h.Class("bg-white text-gray-900 antialiased"),
				h.Main(
					hero(),
					StatsSection(d.Content.Stats),
					FeaturesSection(d.Content.Features),
					TestimonialsSection(d.Content.Testimonials),
					faq,
				),
				footer(year),
				h.Script(g.Raw(contentUpdatesScript)),
			),
		),
	)
}

func hero() g.Node {
	return h.Section(
		h.Class("pt-24 pb-16 px-4 sm:px-6 lg:px-8 text-center bg-gradient-to-b from-green-50 to-white"),
		h.H1(h.Class("text-5xl font-extrabold text-gray-900 mb-6"), g.Text("Send money home in minutes, not days")),
		h.P(h.Class("text-xl text-gray-600 max-w-2xl mx-auto"), g.Text("Fast, low-cost remittances to Nigeria powered by blockchain.")),
	)
}

func footer(year int) g.Node {
	return h.Footer(
		h.Class("py-10 text-center text-sm text-gray-500 border-t border-green-100"),
		g.Text("© "+strconv.Itoa(year)+" RemitAbeg. All rights reserved."),
	)
}
