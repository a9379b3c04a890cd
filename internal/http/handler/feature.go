package handler

import (
	"database/sql"
	"strings"

	"remitabeg-landing/internal/config"
	"remitabeg-landing/internal/helper"
	"remitabeg-landing/internal/models"

	"github.com/gofiber/fiber/v2"
)

const featureColumns = "id, icon, title, description, gradient, is_active, sort_order, created_at, updated_at"

const defaultFeatureGradient = "bg-gradient-to-br from-green-100 to-green-200"

func scanFeature(row interface{ Scan(...any) error }, f *models.Feature) error {
	return row.Scan(
		&f.ID,
		&f.Icon,
		&f.Title,
		&f.Description,
		&f.Gradient,
		&f.IsActive,
		&f.SortOrder,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
}

// GetAllFeaturesPagination - Admin list feature cards
func GetAllFeaturesPagination(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	where := " WHERE 1=1"
	args := []interface{}{}
	if isActive := c.Query("is_active"); isActive != "" {
		where += " AND is_active = ?"
		args = append(args, isActive)
	}

	var totalData int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM features"+where, args...).Scan(&totalData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghitung total data",
		})
	}

	rows, err := config.DB.Query(
		"SELECT "+featureColumns+" FROM features"+where+" ORDER BY sort_order ASC, created_at ASC LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset)...,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data feature",
		})
	}
	defer rows.Close()

	features := []models.Feature{}
	for rows.Next() {
		var f models.Feature
		if err := scanFeature(rows, &f); err != nil {
			continue
		}
		features = append(features, f)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       features,
		"pagination": p.Meta(totalData),
	})
}

func GetFeatureByID(c *fiber.Ctx) error {
	var f models.Feature
	err := scanFeature(config.DB.QueryRow("SELECT "+featureColumns+" FROM features WHERE id = ?", c.Params("id")), &f)

	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feature tidak ditemukan",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data feature",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    f,
	})
}

func validateFeature(req *models.FeatureRequest, partial bool) string {
	req.Title = strings.TrimSpace(req.Title)
	trimOptional(req.Icon)
	trimOptional(req.Description)
	trimOptional(req.Gradient)

	if !partial && req.Title == "" {
		return "Title wajib diisi"
	}
	if tooLong(req.Title, 255) {
		return maxCharsMsg("Title", 255)
	}
	if tooLong(deref(req.Icon), 50) {
		return maxCharsMsg("Icon", 50)
	}
	if tooLong(deref(req.Description), 1000) {
		return maxCharsMsg("Description", 1000)
	}
	if tooLong(deref(req.Gradient), 255) {
		return maxCharsMsg("Gradient", 255)
	}
	if !validActiveFlag(req.IsActive) {
		return invalidActiveFlagMsg
	}
	return ""
}

// CreateFeature - Buat feature card baru
func CreateFeature(c *fiber.Ctx) error {
	var req models.FeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if msg := validateFeature(&req, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if req.IsActive == "" {
		req.IsActive = "y"
	}
	gradient := deref(req.Gradient)
	if gradient == "" {
		gradient = defaultFeatureGradient
	}
	sortOrder := 1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	result, err := config.DB.Exec(
		"INSERT INTO features (icon, title, description, gradient, is_active, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
		deref(req.Icon), req.Title, deref(req.Description), gradient, req.IsActive, sortOrder,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal membuat feature",
		})
	}

	id, _ := result.LastInsertId()

	var f models.Feature
	scanFeature(config.DB.QueryRow("SELECT "+featureColumns+" FROM features WHERE id = ?", id), &f)

	contentChanged("features")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Feature berhasil dibuat",
		"data":    f,
	})
}

// UpdateFeature - Update feature card berdasarkan ID
func UpdateFeature(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.FeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var exists int
	err := config.DB.QueryRow("SELECT COUNT(*) FROM features WHERE id = ?", id).Scan(&exists)
	if err != nil || exists == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feature tidak ditemukan",
		})
	}

	if msg := validateFeature(&req, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	b := updateBuilder{}
	b.setOptional("icon", req.Icon)
	b.setString("title", req.Title)
	b.setOptional("description", req.Description)
	b.setOptional("gradient", req.Gradient)
	b.setString("is_active", req.IsActive)
	b.setInt("sort_order", req.SortOrder)

	if b.empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tidak ada data yang diupdate",
		})
	}

	query, args := b.build("features", id)
	if _, err := config.DB.Exec(query, args...); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengupdate feature",
		})
	}

	var f models.Feature
	scanFeature(config.DB.QueryRow("SELECT "+featureColumns+" FROM features WHERE id = ?", id), &f)

	contentChanged("features")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feature berhasil diupdate",
		"data":    f,
	})
}

func HardDeleteFeature(c *fiber.Ctx) error {
	return hardDelete(c, "features", "Feature")
}
