package content

import (
	"testing"

	"remitabeg-landing/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStatsOrder(t *testing.T) {
	stats := DefaultStats()

	labels := make([]string, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Total Volume", "Active Users", "Countries", "Avg. Transfer Time"}, labels)
}

func TestDefaultFAQs(t *testing.T) {
	faqs := DefaultFAQs()
	assert.Len(t, faqs, 6)
	assert.Equal(t, "How fast are transfers with RemitAbeg?", faqs[0].Question)
	for _, f := range faqs {
		assert.NotEmpty(t, f.Answer)
	}
}

func TestWithDefaults_KeepsProvidedSections(t *testing.T) {
	c := WithDefaults(models.Content{
		FAQs: []models.FAQ{{Question: "Only one?", Answer: "Yes."}},
	})

	assert.Len(t, c.FAQs, 1)
	assert.Equal(t, DefaultStats(), c.Stats)
	assert.Equal(t, DefaultFeatures(), c.Features)
	assert.Equal(t, DefaultTestimonials(), c.Testimonials)
}
