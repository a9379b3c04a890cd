package view

import (
	"strings"
	"testing"

	"remitabeg-landing/internal/accordion"
	"remitabeg-landing/internal/content"
	"remitabeg-landing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestTestimonialCard_RatingMarks(t *testing.T) {
	for _, rating := range []int{0, 3, 5, 6} {
		out := render(t, TestimonialCard(models.Testimonial{Name: "Ada", Rating: rating}))
		assert.Equal(t, rating, strings.Count(out, "data-rating-mark"), "rating %d", rating)
	}
}

func TestTestimonialCard_NegativeRatingRendersNoMarks(t *testing.T) {
	out := render(t, TestimonialCard(models.Testimonial{Name: "Ada", Rating: -3}))
	assert.Zero(t, strings.Count(out, "data-rating-mark"))
}

func TestTestimonialCard_Attribution(t *testing.T) {
	out := render(t, TestimonialCard(models.Testimonial{
		Name:    "Tunde",
		Role:    "Engineer",
		Content: "Fast",
		Avatar:  "/static/avatars/tunde.jpg",
		Rating:  1,
	}))

	assert.Contains(t, out, `src="/static/avatars/tunde.jpg"`)
	assert.Contains(t, out, `alt="Tunde avatar"`)
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "Fast")
}

func TestFeatureCard_EchoesInput(t *testing.T) {
	out := render(t, FeatureCard(models.Feature{
		Icon:        "🚀",
		Title:       "Quick",
		Description: "Very quick",
		Gradient:    "bg-gradient-to-br from-green-100 to-green-200",
	}))

	assert.Contains(t, out, "🚀")
	assert.Contains(t, out, "Quick")
	assert.Contains(t, out, "Very quick")
	assert.Contains(t, out, "from-green-100 to-green-200")
}

func TestFeatureCard_RegisteredIcon(t *testing.T) {
	out := render(t, FeatureCard(models.Feature{Icon: "shield", Title: "Safe"}))
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, ">shield<")
}

func TestFeatureCard_EmptyInputRendersEmpty(t *testing.T) {
	out := render(t, FeatureCard(models.Feature{}))
	assert.Contains(t, out, "<h3")
}

func TestStatsSection_Order(t *testing.T) {
	out := render(t, StatsSection(content.DefaultStats()))

	labels := []string{"Total Volume", "Active Users", "Countries", "Avg. Transfer Time"}
	last := -1
	for _, label := range labels {
		pos := strings.Index(out, `data-stat="`+label+`"`)
		require.NotEqual(t, -1, pos, label)
		assert.Greater(t, pos, last, label)
		last = pos
	}
	assert.Equal(t, 4, strings.Count(out, "data-stat="))
}

func TestFAQSection_DefaultFirstExpanded(t *testing.T) {
	a := accordion.New("faq", content.DefaultFAQs())
	out := render(t, FAQSection(a))

	assert.Equal(t, 1, strings.Count(out, `data-expanded="true"`))
	assert.Equal(t, 5, strings.Count(out, `data-expanded="false"`))
	assert.Contains(t, out, `data-faq-index="0" data-expanded="true"`)
	assert.Contains(t, out, `id="faq-faq"`)
	assert.Contains(t, out, `hx-post="/faq/faq/toggle/3"`)
}

func TestFAQSection_AllCollapsed(t *testing.T) {
	a := accordion.WithSelection("faq", content.DefaultFAQs(), accordion.None())
	out := render(t, FAQSection(a))

	assert.NotContains(t, out, `data-expanded="true"`)
	assert.NotContains(t, out, "rotate-180")
	assert.NotContains(t, out, "max-h-96")
}

func TestFAQSection_EscapesContent(t *testing.T) {
	a := accordion.New("faq", []models.FAQ{{Question: "<script>", Answer: "a & b"}})
	out := render(t, FAQSection(a))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestPage(t *testing.T) {
	c := content.Default()
	out := render(t, Page(PageData{
		Content: c,
		FAQ:     accordion.New("faq", c.FAQs),
		Year:    2026,
	}))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `id="stats"`)
	assert.Contains(t, out, `id="features"`)
	assert.Contains(t, out, `id="testimonials"`)
	assert.Contains(t, out, `id="faq-faq"`)
	assert.Contains(t, out, "© 2026 RemitAbeg")
}

func TestPage_WithoutFAQ(t *testing.T) {
	out := render(t, Page(PageData{Content: content.Default(), Year: 2026}))
	assert.NotContains(t, out, `id="faq-`)
}

func openingTag(t *testing.T, out, id string) string {
	t.Helper()
	start := strings.Index(out, `<section id="`+id+`"`)
	require.GreaterOrEqual(t, start, 0, "section %s missing", id)
	end := strings.Index(out[start:], ">")
	require.Greater(t, end, 0)
	return out[start : start+end+1]
}

func TestPage_EverySectionRefreshesOnContentUpdate(t *testing.T) {
	c := content.Default()
	out := render(t, Page(PageData{
		Content: c,
		FAQ:     accordion.New("faq", c.FAQs),
		Year:    2026,
	}))

	sections := map[string]string{
		"stats":        "/partials/stats",
		"features":     "/partials/features",
		"testimonials": "/partials/testimonials",
		"faq-faq":      "/partials/faq/faq",
	}
	for id, url := range sections {
		tag := openingTag(t, out, id)
		assert.Contains(t, tag, `hx-get="`+url+`"`, id)
		assert.Contains(t, tag, `hx-trigger="content-updated from:body"`, id)
		assert.Contains(t, tag, `hx-swap="outerHTML"`, id)
	}
}
