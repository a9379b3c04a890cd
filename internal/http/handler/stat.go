package handler

import (
	"database/sql"
	"strings"

	"remitabeg-landing/internal/config"
	"remitabeg-landing/internal/helper"
	"remitabeg-landing/internal/models"

	"github.com/gofiber/fiber/v2"
)

const statColumns = "id, icon, value, label, gradient, is_active, sort_order, created_at, updated_at"

func scanStat(row interface{ Scan(...any) error }, s *models.Stat) error {
	return row.Scan(
		&s.ID,
		&s.Icon,
		&s.Value,
		&s.Label,
		&s.Gradient,
		&s.IsActive,
		&s.SortOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// GetAllStatsPagination - Admin list statistik
func GetAllStatsPagination(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	where := " WHERE 1=1"
	args := []interface{}{}
	if isActive := c.Query("is_active"); isActive != "" {
		where += " AND is_active = ?"
		args = append(args, isActive)
	}

	var totalData int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM stats"+where, args...).Scan(&totalData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghitung total data",
		})
	}

	rows, err := config.DB.Query(
		"SELECT "+statColumns+" FROM stats"+where+" ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset)...,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data statistik",
		})
	}
	defer rows.Close()

	stats := []models.Stat{}
	for rows.Next() {
		var s models.Stat
		if err := scanStat(rows, &s); err != nil {
			continue
		}
		stats = append(stats, s)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       stats,
		"pagination": p.Meta(totalData),
	})
}

func GetStatByID(c *fiber.Ctx) error {
	var s models.Stat
	err := scanStat(config.DB.QueryRow("SELECT "+statColumns+" FROM stats WHERE id = ?", c.Params("id")), &s)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Statistik tidak ditemukan",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data statistik",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    s,
	})
}

func validateStat(req *models.StatRequest, partial bool) string {
	req.Value = strings.TrimSpace(req.Value)
	req.Label = strings.TrimSpace(req.Label)
	trimOptional(req.Icon)
	trimOptional(req.Gradient)

	if !partial && req.Value == "" {
		return "Value wajib diisi"
	}
	if !partial && req.Label == "" {
		return "Label wajib diisi"
	}
	if tooLong(req.Value, 50) {
		return maxCharsMsg("Value", 50)
	}
	if tooLong(req.Label, 100) {
		return maxCharsMsg("Label", 100)
	}
	if tooLong(deref(req.Icon), 50) {
		return maxCharsMsg("Icon", 50)
	}
	if tooLong(deref(req.Gradient), 255) {
		return maxCharsMsg("Gradient", 255)
	}
	if !validActiveFlag(req.IsActive) {
		return invalidActiveFlagMsg
	}
	return ""
}

// CreateStat - Tambah statistik
func CreateStat(c *fiber.Ctx) error {
	var req models.StatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if msg := validateStat(&req, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if req.IsActive == "" {
		req.IsActive = "y"
	}
	gradient := deref(req.Gradient)
	if gradient == "" {
		gradient = "from-green-500 to-green-600"
	}
	sortOrder := 1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	result, err := config.DB.Exec(
		"INSERT INTO stats (icon, value, label, gradient, is_active, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
		deref(req.Icon), req.Value, req.Label, gradient, req.IsActive, sortOrder,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat statistik",
		})
	}

	id, _ := result.LastInsertId()

	var s models.Stat
	scanStat(config.DB.QueryRow("SELECT "+statColumns+" FROM stats WHERE id = ?", id), &s)

	contentChanged("stats")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Statistik berhasil dibuat",
		"data":    s,
	})
}

// UpdateStat - Update statistik berdasarkan ID
func UpdateStat(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.StatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM stats WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Statistik tidak ditemukan",
		})
	}

	if msg := validateStat(&req, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	b := updateBuilder{}
	b.setOptional("icon", req.Icon)
	b.setString("value", req.Value)
	b.setString("label", req.Label)
	b.setOptional("gradient", req.Gradient)
	b.setString("is_active", req.IsActive)
	b.setInt("sort_order", req.SortOrder)

	if b.empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tidak ada data yang diupdate",
		})
	}

	query, args := b.build("stats", id)
	if _, err := config.DB.Exec(query, args...); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate statistik",
		})
	}

	var s models.Stat
	scanStat(config.DB.QueryRow("SELECT "+statColumns+" FROM stats WHERE id = ?", id), &s)

	contentChanged("stats")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Statistik berhasil diupdate",
		"data":    s,
	})
}

func HardDeleteStat(c *fiber.Ctx) error {
	return hardDelete(c, "stats", "Statistik")
}
