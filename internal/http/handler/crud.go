package handler

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"remitabeg-landing/internal/config"

	"github.com/gofiber/fiber/v2"
)

// updateBuilder - build dynamic UPDATE query, hanya kolom yang dikirim
type updateBuilder struct {
	updates []string
	args    []interface{}
}

// setString - kolom wajib, string kosong berarti tidak diupdate
func (b *updateBuilder) setString(column, value string) {
	if value == "" {
		return
	}
	b.updates = append(b.updates, column+" = ?")
	b.args = append(b.args, value)
}

// setOptional - kolom opsional, nil tidak diupdate, "" mengosongkan kolom
func (b *updateBuilder) setOptional(column string, value *string) {
	if value == nil {
		return
	}
	b.updates = append(b.updates, column+" = ?")
	b.args = append(b.args, *value)
}

func (b *updateBuilder) setInt(column string, value *int) {
	if value == nil {
		return
	}
	b.updates = append(b.updates, column+" = ?")
	b.args = append(b.args, *value)
}

func (b *updateBuilder) empty() bool {
	return len(b.updates) == 0
}

// build returns the statement for table (a constant, never user input).
func (b *updateBuilder) build(table string, id interface{}) (string, []interface{}) {
	query := "UPDATE " + table + " SET " + strings.Join(b.updates, ", ") + " WHERE id = ?"
	return query, append(b.args, id)
}

// tooLong counts characters, not bytes. The VARCHAR/TEXT limits of the
// utf8mb4 tables are in characters.
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

func maxCharsMsg(field string, max int) string {
	return field + " maksimal " + strconv.Itoa(max) + " karakter"
}

func trimOptional(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func hardDelete(c *fiber.Ctx, table, label string) error {
	result, err := config.DB.Exec("DELETE FROM "+table+" WHERE id = ?", c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal menghapus " + label,
		})
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": label + " tidak ditemukan",
		})
	}

	contentChanged(table)

	return c.JSON(fiber.Map{
		"success": true,
		"message": label + " berhasil dihapus permanent",
	})
}

const invalidActiveFlagMsg = "is_active harus 'y' atau 'n'"

func validActiveFlag(v string) bool {
	return v == "" || v == "y" || v == "n"
}
