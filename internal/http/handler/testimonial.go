package handler

import (
	"database/sql"
	"strings"

	"remitabeg-landing/internal/config"
	"remitabeg-landing/internal/helper"
	"remitabeg-landing/internal/models"

	"github.com/gofiber/fiber/v2"
)

const testimonialColumns = "id, name, role, content, avatar, rating, is_active, sort_order, created_at, updated_at"

func scanTestimonial(row interface{ Scan(...any) error }, t *models.Testimonial) error {
	return row.Scan(
		&t.ID,
		&t.Name,
		&t.Role,
		&t.Content,
		&t.Avatar,
		&t.Rating,
		&t.IsActive,
		&t.SortOrder,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// GetAllTestimonialsPagination - Admin list testimoni
func GetAllTestimonialsPagination(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)
	search := c.Query("search")

	where := " WHERE 1=1"
	args := []interface{}{}
	if isActive := c.Query("is_active"); isActive != "" {
		where += " AND is_active = ?"
		args = append(args, isActive)
	}
	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		where += " AND (name LIKE ? OR content LIKE ?)"
		args = append(args, search, search)
	}

	var totalData int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM testimonials"+where, args...).Scan(&totalData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghitung total data",
		})
	}

	rows, err := config.DB.Query(
		"SELECT "+testimonialColumns+" FROM testimonials"+where+" ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset)...,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data testimoni",
		})
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := scanTestimonial(rows, &t); err != nil {
			continue
		}
		testimonials = append(testimonials, t)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       testimonials,
		"pagination": p.Meta(totalData),
	})
}

func GetTestimonialByID(c *fiber.Ctx) error {
	var t models.Testimonial
	err := scanTestimonial(config.DB.QueryRow("SELECT "+testimonialColumns+" FROM testimonials WHERE id = ?", c.Params("id")), &t)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimoni tidak ditemukan",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data testimoni",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    t,
	})
}

// validateTestimonial - rating di luar 0..5 ditolak di sini, bukan di renderer
func validateTestimonial(req *models.TestimonialRequest, partial bool) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Content = strings.TrimSpace(req.Content)
	trimOptional(req.Role)
	trimOptional(req.Avatar)

	if !partial && req.Name == "" {
		return "Name wajib diisi"
	}
	if !partial && req.Content == "" {
		return "Content wajib diisi"
	}
	if tooLong(req.Name, 100) {
		return maxCharsMsg("Name", 100)
	}
	if tooLong(deref(req.Role), 100) {
		return maxCharsMsg("Role", 100)
	}
	if tooLong(req.Content, 2000) {
		return maxCharsMsg("Content", 2000)
	}
	if tooLong(deref(req.Avatar), 500) {
		return maxCharsMsg("Avatar", 500)
	}
	if req.Rating != nil && !helper.ValidRating(*req.Rating) {
		return "Rating harus antara 0 sampai 5"
	}
	if !validActiveFlag(req.IsActive) {
		return invalidActiveFlagMsg
	}
	return ""
}

// CreateTestimonial - Tambah testimoni
func CreateTestimonial(c *fiber.Ctx) error {
	var req models.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if msg := validateTestimonial(&req, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if req.IsActive == "" {
		req.IsActive = "y"
	}
	rating := helper.MaxRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	sortOrder := 1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	result, err := config.DB.Exec(
		"INSERT INTO testimonials (name, role, content, avatar, rating, is_active, sort_order) VALUES (?, ?, ?, ?, ?, ?, ?)",
		req.Name, deref(req.Role), req.Content, deref(req.Avatar), rating, req.IsActive, sortOrder,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat testimoni",
		})
	}

	id, _ := result.LastInsertId()

	var t models.Testimonial
	scanTestimonial(config.DB.QueryRow("SELECT "+testimonialColumns+" FROM testimonials WHERE id = ?", id), &t)

	contentChanged("testimonials")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Testimoni berhasil dibuat",
		"data":    t,
	})
}

// UpdateTestimonial - Update testimoni berdasarkan ID
func UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM testimonials WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimoni tidak ditemukan",
		})
	}

	if msg := validateTestimonial(&req, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	b := updateBuilder{}
	b.setString("name", req.Name)
	b.setOptional("role", req.Role)
	b.setString("content", req.Content)
	b.setOptional("avatar", req.Avatar)
	b.setInt("rating", req.Rating)
	b.setString("is_active", req.IsActive)
	b.setInt("sort_order", req.SortOrder)

	if b.empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tidak ada data yang diupdate",
		})
	}

	query, args := b.build("testimonials", id)
	if _, err := config.DB.Exec(query, args...); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate testimoni",
		})
	}

	var t models.Testimonial
	scanTestimonial(config.DB.QueryRow("SELECT "+testimonialColumns+" FROM testimonials WHERE id = ?", id), &t)

	contentChanged("testimonials")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Testimoni berhasil diupdate",
		"data":    t,
	})
}

func HardDeleteTestimonial(c *fiber.Ctx) error {
	return hardDelete(c, "testimonials", "Testimoni")
}
