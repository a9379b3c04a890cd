package helper

import "github.com/gofiber/fiber/v2"

type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination - baca page & limit dari query string.
// page < 1 jadi 1, limit di luar 1..100 jadi 10.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Meta - blok "pagination" untuk response list.
func (p Pagination) Meta(totalData int) fiber.Map {
	totalPages := (totalData + p.Limit - 1) / p.Limit
	return fiber.Map{
		"page":        p.Page,
		"limit":       p.Limit,
		"total_data":  totalData,
		"total_pages": totalPages,
	}
}
