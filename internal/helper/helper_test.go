package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingMarks(t *testing.T) {
	assert.Equal(t, 0, RatingMarks(0))
	assert.Equal(t, 3, RatingMarks(3))
	assert.Equal(t, 6, RatingMarks(6))
	assert.Equal(t, 0, RatingMarks(-2))
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(0))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query  string
		page   int
		limit  int
		offset int
	}{
		{"", 1, 10, 0},
		{"?page=3&limit=20", 3, 20, 40},
		{"?page=0&limit=500", 1, 10, 0},
		{"?page=-4&limit=0", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return c.JSON(ParsePagination(c))
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)

			var got Pagination
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, Pagination{Page: tt.page, Limit: tt.limit, Offset: tt.offset}, got)
		})
	}
}

func TestPaginationMeta(t *testing.T) {
	p := Pagination{Page: 2, Limit: 10, Offset: 10}
	meta := p.Meta(25)

	assert.Equal(t, 3, meta["total_pages"])
	assert.Equal(t, 25, meta["total_data"])
}
