package handler

import (
	"database/sql"
	"strings"

	"remitabeg-landing/internal/config"
	"remitabeg-landing/internal/helper"
	"remitabeg-landing/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	maxQuestionLen = 255
	maxAnswerLen   = 3000
)

const faqColumns = "id, question, answer, is_active, sort_order, created_at, updated_at"

func scanFAQ(row interface{ Scan(...any) error }, faq *models.FAQ) error {
	return row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.IsActive,
		&faq.SortOrder,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	)
}

// GetAllFAQsPagination - Admin endpoint untuk ambil semua FAQ dengan pagination
func GetAllFAQsPagination(c *fiber.Ctx) error {
	isActive := c.Query("is_active")
	search := c.Query("search")
	p := helper.ParsePagination(c)

	where := " WHERE 1=1"
	args := []interface{}{}

	if isActive != "" {
		where += " AND is_active = ?"
		args = append(args, isActive)
	}

	if search != "" {
		search = "%" + strings.TrimSpace(search) + "%"
		where += " AND (question LIKE ? OR answer LIKE ?)"
		args = append(args, search, search)
	}

	var totalData int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faqs"+where, args...).Scan(&totalData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghitung total data",
		})
	}

	query := "SELECT " + faqColumns + " FROM faqs" + where +
		" ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?"
	rows, err := config.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var faq models.FAQ
		if err := scanFAQ(rows, &faq); err != nil {
			continue
		}
		faqs = append(faqs, faq)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       faqs,
		"pagination": p.Meta(totalData),
	})
}

// GetFAQByID - Ambil FAQ berdasarkan ID
func GetFAQByID(c *fiber.Ctx) error {
	var faq models.FAQ
	err := scanFAQ(config.DB.QueryRow("SELECT "+faqColumns+" FROM faqs WHERE id = ?", c.Params("id")), &faq)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ tidak ditemukan",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    faq,
	})
}

// validateFAQ - dipakai create (partial=false) dan update (partial=true)
func validateFAQ(req *models.FAQRequest, partial bool) string {
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)

	if !partial && req.Question == "" {
		return "Question wajib diisi"
	}
	if !partial && req.Answer == "" {
		return "Answer wajib diisi"
	}
	if tooLong(req.Question, maxQuestionLen) {
		return maxCharsMsg("Question", maxQuestionLen)
	}
	if tooLong(req.Answer, maxAnswerLen) {
		return maxCharsMsg("Answer", maxAnswerLen)
	}
	if !validActiveFlag(req.IsActive) {
		return invalidActiveFlagMsg
	}
	return ""
}

// CreateFAQ - Buat FAQ baru
func CreateFAQ(c *fiber.Ctx) error {
	var req models.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if msg := validateFAQ(&req, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if req.IsActive == "" {
		req.IsActive = "y"
	}

	sortOrder := 1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	result, err := config.DB.Exec(
		"INSERT INTO faqs (question, answer, is_active, sort_order) VALUES (?, ?, ?, ?)",
		req.Question, req.Answer, req.IsActive, sortOrder,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat FAQ",
		})
	}

	id, _ := result.LastInsertId()

	var faq models.FAQ
	scanFAQ(config.DB.QueryRow("SELECT "+faqColumns+" FROM faqs WHERE id = ?", id), &faq)

	contentChanged("faqs")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "FAQ berhasil dibuat",
		"data":    faq,
	})
}

// UpdateFAQ - Update FAQ berdasarkan ID
func UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM faqs WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ tidak ditemukan",
		})
	}

	if msg := validateFAQ(&req, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	b := updateBuilder{}
	b.setString("question", req.Question)
	b.setString("answer", req.Answer)
	b.setString("is_active", req.IsActive)
	b.setInt("sort_order", req.SortOrder)

	if b.empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tidak ada data yang diupdate",
		})
	}

	query, args := b.build("faqs", id)
	if _, err := config.DB.Exec(query, args...); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate FAQ",
		})
	}

	var faq models.FAQ
	scanFAQ(config.DB.QueryRow("SELECT "+faqColumns+" FROM faqs WHERE id = ?", id), &faq)

	contentChanged("faqs")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ berhasil diupdate",
		"data":    faq,
	})
}

// HardDeleteFAQ - Hapus FAQ permanent
func HardDeleteFAQ(c *fiber.Ctx) error {
	return hardDelete(c, "faqs", "FAQ")
}
