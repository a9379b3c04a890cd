package handler

import (
	"encoding/json"
	"strings"
	"testing"

	"remitabeg-landing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestUpdateBuilder(t *testing.T) {
	b := updateBuilder{}
	assert.True(t, b.empty())

	b.setString("question", "Why?")
	b.setString("answer", "")
	b.setInt("sort_order", intPtr(0))
	b.setInt("rating", nil)

	query, args := b.build("faqs", "9")
	assert.Equal(t, "UPDATE faqs SET question = ?, sort_order = ? WHERE id = ?", query)
	assert.Equal(t, []interface{}{"Why?", 0, "9"}, args)
}

func TestUpdateBuilder_OptionalCanBeCleared(t *testing.T) {
	b := updateBuilder{}
	b.setOptional("role", strPtr(""))
	b.setOptional("avatar", nil)
	b.setOptional("icon", strPtr("zap"))

	query, args := b.build("testimonials", "3")
	assert.Equal(t, "UPDATE testimonials SET role = ?, icon = ? WHERE id = ?", query)
	assert.Equal(t, []interface{}{"", "zap", "3"}, args)
}

func TestTestimonialRequest_ClearingOptionalFields(t *testing.T) {
	var req models.TestimonialRequest
	require.NoError(t, json.Unmarshal([]byte(`{"role": "", "avatar": "  "}`), &req))
	assert.Empty(t, validateTestimonial(&req, true))

	b := updateBuilder{}
	b.setString("name", req.Name)
	b.setOptional("role", req.Role)
	b.setOptional("avatar", req.Avatar)

	query, args := b.build("testimonials", "1")
	assert.Equal(t, "UPDATE testimonials SET role = ?, avatar = ? WHERE id = ?", query)
	assert.Equal(t, []interface{}{"", "", "1"}, args)
}

func TestValidateFAQ(t *testing.T) {
	req := models.FAQRequest{Question: "  Why?  ", Answer: " Because. "}
	assert.Empty(t, validateFAQ(&req, false))
	assert.Equal(t, "Why?", req.Question)

	assert.Equal(t, "Question wajib diisi", validateFAQ(&models.FAQRequest{Answer: "x"}, false))
	assert.Empty(t, validateFAQ(&models.FAQRequest{Answer: "x"}, true))
	assert.Equal(t, "Question maksimal 255 karakter",
		validateFAQ(&models.FAQRequest{Question: strings.Repeat("q", 256), Answer: "x"}, false))
	assert.Equal(t, invalidActiveFlagMsg, validateFAQ(&models.FAQRequest{Question: "q", Answer: "x", IsActive: "yes"}, false))
}

func TestValidateFAQ_CountsCharactersNotBytes(t *testing.T) {
	// 255 characters, 765 bytes
	question := strings.Repeat("é", 85) + strings.Repeat("日", 85) + strings.Repeat("a", 85)
	require.Greater(t, len(question), maxQuestionLen)

	assert.Empty(t, validateFAQ(&models.FAQRequest{Question: question, Answer: "x"}, false))
	assert.NotEmpty(t, validateFAQ(&models.FAQRequest{Question: question + "é", Answer: "x"}, false))
}

func TestValidateTestimonial_Rating(t *testing.T) {
	ok := models.TestimonialRequest{Name: "Ada", Content: "Great", Rating: intPtr(5)}
	assert.Empty(t, validateTestimonial(&ok, false))

	tooHigh := models.TestimonialRequest{Name: "Ada", Content: "Great", Rating: intPtr(6)}
	assert.Equal(t, "Rating harus antara 0 sampai 5", validateTestimonial(&tooHigh, false))

	negative := models.TestimonialRequest{Rating: intPtr(-1)}
	assert.Equal(t, "Rating harus antara 0 sampai 5", validateTestimonial(&negative, true))
}

func TestValidateTestimonial_MultiByteName(t *testing.T) {
	req := models.TestimonialRequest{Name: strings.Repeat("Ñ", 100), Content: "Mantap"}
	assert.Empty(t, validateTestimonial(&req, false))

	req.Name += "Ñ"
	assert.Equal(t, "Name maksimal 100 karakter", validateTestimonial(&req, false))
}

func TestValidateStatAndFeature(t *testing.T) {
	assert.Equal(t, "Label wajib diisi", validateStat(&models.StatRequest{Value: "45+"}, false))
	assert.Empty(t, validateStat(&models.StatRequest{Value: "45+", Label: "Countries"}, false))
	assert.Empty(t, validateStat(&models.StatRequest{Value: "< 2 min", Label: strings.Repeat("ü", 100)}, false))

	assert.Equal(t, "Title wajib diisi", validateFeature(&models.FeatureRequest{}, false))
	assert.Empty(t, validateFeature(&models.FeatureRequest{Title: "Fast"}, false))

	icon := strPtr("  ⚡  ")
	assert.Empty(t, validateFeature(&models.FeatureRequest{Title: "Fast", Icon: icon}, false))
	assert.Equal(t, "⚡", *icon)
}
