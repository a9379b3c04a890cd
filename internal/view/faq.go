package view

import (
	"fmt"
	"strconv"

	"remitabeg-landing/internal/accordion"
	"remitabeg-landing/internal/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FAQSectionID is the DOM id of the section rendered for an accordion.
func FAQSectionID(accordionID string) string {
	return "faq-" + accordionID
}

// PartialURL is the fragment endpoint that re-renders an accordion with the
// visitor's stored selection.
func PartialURL(accordionID string) string {
	return "/partials/faq/" + accordionID
}

// ToggleURL is the endpoint a question button posts to.
func ToggleURL(accordionID string, index int) string {
	return fmt.Sprintf("/faq/%s/toggle/%d", accordionID, index)
}

// FAQSection renders the accordion with its current selection. The section
// is also the htmx swap target for toggle responses.
func FAQSection(a *accordion.Accordion) g.Node {
	items := make([]g.Node, 0, a.Len())
	for i, item := range a.Items() {
		items = append(items, faqItem(a.ID, i, item, a.Expanded(i)))
	}

	return h.Section(
		h.ID(FAQSectionID(a.ID)),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-b from-green-50/50 to-white"),
		liveRefresh(PartialURL(a.ID)),
		h.Div(
			h.Class("max-w-4xl mx-auto"),
			h.Div(
				h.Class("text-center mb-16"),
				h.H2(h.Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Frequently Asked Questions")),
				h.P(h.Class("text-xl text-gray-600"), g.Text("Everything you need to know about RemitAbeg")),
			),
			h.Div(h.Class("space-y-4"), g.Group(items)),
		),
	)
}

func faqItem(accordionID string, index int, item models.FAQ, expanded bool) g.Node {
	answerID := fmt.Sprintf("%s-answer-%d", FAQSectionID(accordionID), index)
	url := ToggleURL(accordionID, index)

	chevronClass := "w-5 h-5 text-green-600 flex-shrink-0 transition-transform duration-300"
	panelClass := "overflow-hidden transition-all duration-300 max-h-0"
	if expanded {
		chevronClass += " rotate-180"
		panelClass = "overflow-hidden transition-all duration-300 max-h-96"
	}

	return h.Div(
		h.Class("bg-white/80 backdrop-blur-sm border border-green-200 rounded-xl overflow-hidden hover:shadow-lg transition-all duration-300"),
		g.Attr("data-faq-index", strconv.Itoa(index)),
		g.Attr("data-expanded", strconv.FormatBool(expanded)),
		h.Form(
			h.Method("post"),
			h.Action(url),
			g.Attr("hx-post", url),
			g.Attr("hx-target", "#"+FAQSectionID(accordionID)),
			g.Attr("hx-swap", "outerHTML"),
			h.Button(
				h.Type("submit"),
				h.Class("w-full px-6 py-5 flex items-center justify-between text-left hover:bg-green-50/50 transition-colors"),
				h.Aria("expanded", strconv.FormatBool(expanded)),
				h.Aria("controls", answerID),
				h.Span(h.Class("font-semibold text-gray-900 pr-4"), g.Text(item.Question)),
				Icon("chevron-down", chevronClass),
			),
		),
		h.Div(
			h.ID(answerID),
			h.Class(panelClass),
			h.Aria("hidden", strconv.FormatBool(!expanded)),
			h.Div(h.Class("px-6 pb-5 text-gray-600 leading-relaxed"), g.Text(item.Answer)),
		),
	)
}
