package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"remitabeg-landing/internal/accordion"
	"remitabeg-landing/internal/content"
	"remitabeg-landing/internal/http/middleware"
	"remitabeg-landing/internal/models"
	"remitabeg-landing/internal/view"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// DefaultAccordion is the id of the landing page FAQ accordion.
const DefaultAccordion = "faq"

// AccordionItems picks the items of one accordion out of a content snapshot.
type AccordionItems func(models.Content) []models.FAQ

// Landing serves the public landing page and its htmx fragments.
type Landing struct {
	Content    content.Source
	Selections accordion.Store
	// Accordions maps accordion id to its items. Each id keeps its own
	// selection per visitor.
	Accordions map[string]AccordionItems
}

// accordionItems - picker item untuk accordion id, content.ErrNotFound
// kalau id tidak terdaftar
func (l *Landing) accordionItems(id string) (AccordionItems, error) {
	pick, ok := l.Accordions[id]
	if !ok {
		return nil, fmt.Errorf("accordion %q: %w", id, content.ErrNotFound)
	}
	return pick, nil
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Accordion tidak ditemukan",
	})
}

func NewLanding(src content.Source, selections accordion.Store) *Landing {
	return &Landing{
		Content:    src,
		Selections: selections,
		Accordions: map[string]AccordionItems{
			DefaultAccordion: func(c models.Content) []models.FAQ { return c.FAQs },
		},
	}
}

func render(c *fiber.Ctx, n g.Node) error {
	c.Type("html", "utf-8")
	return n.Render(c)
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// loadContent - konten gagal dimuat tidak boleh bikin halaman error,
// fallback ke konten default.
func (l *Landing) loadContent(c *fiber.Ctx) models.Content {
	snapshot, err := l.Content.Load(c.UserContext())
	if err != nil {
		log.Printf("[landing] load content error, pakai default: %v", err)
		return content.Default()
	}
	return content.WithDefaults(snapshot)
}

func (l *Landing) loadAccordion(c *fiber.Ctx, id string, items []models.FAQ) *accordion.Accordion {
	sid := middleware.SessionID(c)
	if sid == "" {
		return accordion.New(id, items)
	}

	sel, found, err := l.Selections.Load(c.UserContext(), sid, id)
	if err != nil {
		log.Printf("[landing] load selection error: %v", err)
		return accordion.New(id, items)
	}
	if !found {
		return accordion.New(id, items)
	}
	return accordion.WithSelection(id, items, sel)
}

// GetLandingPage - halaman utama
func (l *Landing) GetLandingPage(c *fiber.Ctx) error {
	snapshot := l.loadContent(c)
	faq := l.loadAccordion(c, DefaultAccordion, snapshot.FAQs)

	return render(c, view.Page(view.PageData{
		Content: snapshot,
		FAQ:     faq,
		Year:    time.Now().Year(),
	}))
}

// ToggleFAQ - buka/tutup satu item FAQ. htmx dapat fragment section,
// form biasa di-redirect balik ke halaman.
func (l *Landing) ToggleFAQ(c *fiber.Ctx) error {
	id := c.Params("accordion")
	pick, err := l.accordionItems(id)
	if errors.Is(err, content.ErrNotFound) {
		return notFound(c)
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Index item tidak valid",
		})
	}

	snapshot := l.loadContent(c)
	faq := l.loadAccordion(c, id, pick(snapshot))

	if err := faq.Toggle(index); err != nil {
		if errors.Is(err, accordion.ErrIndexOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Index item di luar jangkauan",
			})
		}
		return err
	}

	if sid := middleware.SessionID(c); sid != "" {
		if err := l.Selections.Save(c.UserContext(), sid, id, faq.Selection()); err != nil {
			log.Printf("[landing] save selection error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Gagal menyimpan pilihan FAQ",
			})
		}
	}

	if !isHTMX(c) {
		return c.Redirect(fmt.Sprintf("/#%s", view.FAQSectionID(id)), fiber.StatusSeeOther)
	}
	return render(c, view.FAQSection(faq))
}

// GetFAQPartial - fragment FAQ sesuai selection visitor
func (l *Landing) GetFAQPartial(c *fiber.Ctx) error {
	id := c.Params("accordion")
	pick, err := l.accordionItems(id)
	if errors.Is(err, content.ErrNotFound) {
		return notFound(c)
	}

	snapshot := l.loadContent(c)
	return render(c, view.FAQSection(l.loadAccordion(c, id, pick(snapshot))))
}

func (l *Landing) GetFeaturesPartial(c *fiber.Ctx) error {
	return render(c, view.FeaturesSection(l.loadContent(c).Features))
}

func (l *Landing) GetStatsPartial(c *fiber.Ctx) error {
	return render(c, view.StatsSection(l.loadContent(c).Stats))
}

func (l *Landing) GetTestimonialsPartial(c *fiber.Ctx) error {
	return render(c, view.TestimonialsSection(l.loadContent(c).Testimonials))
}

// GetContent - public endpoint, snapshot konten landing dalam JSON
func (l *Landing) GetContent(c *fiber.Ctx) error {
	snapshot, err := l.Content.Load(c.UserContext())
	if err != nil {
		log.Printf("[landing] load content error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal memuat konten",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    content.WithDefaults(snapshot),
	})
}

// ExportContent - download snapshot konten sebagai file JSON
func (l *Landing) ExportContent(c *fiber.Ctx) error {
	snapshot, err := l.Content.Load(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal memuat konten",
		})
	}

	fileName := fmt.Sprintf("landing-content-%s.json", time.Now().Format("20060102-150405"))
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.JSON(snapshot)
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
