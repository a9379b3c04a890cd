package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"remitabeg-landing/internal/accordion"
	"remitabeg-landing/internal/config"
	"remitabeg-landing/internal/content"
	"remitabeg-landing/internal/http/handler"
	"remitabeg-landing/internal/http/middleware"
	"remitabeg-landing/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	config.LoadEnv()
	hasRedis := config.InitRedis()
	hasDB := config.InitDB()
	defer config.CloseDB()
	defer config.CloseRedis()

	// Content source: MySQL kalau ada, selain itu konten default
	var src content.Source = content.Static{Content: content.Default()}
	if hasDB {
		src = content.NewMySQL(config.DB)
	}
	cached := content.NewCached(src, config.Redis, config.GetEnvDuration("CONTENT_CACHE_TTL", content.DefaultCacheTTL))
	handler.ContentCache = cached

	// Selection FAQ per visitor
	var selections accordion.Store = accordion.NewMemoryStore()
	if hasRedis {
		selections = accordion.NewRedisStore(config.Redis, config.GetEnvDuration("SELECTION_TTL", accordion.DefaultTTL))
	}

	landing := handler.NewLanding(cached, selections)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go realtime.Content.Run(ctx)

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, HX-Request, HX-Target",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Static("/static", config.GetEnv("STATIC_DIR", "./public"))
	app.Get("/healthz", handler.Health)

	// ===== LANDING PAGE =====
	session := middleware.Session()
	app.Get("/", session, landing.GetLandingPage)
	app.Post("/faq/:accordion/toggle/:index", session, landing.ToggleFAQ)
	app.Get("/partials/faq/:accordion", session, landing.GetFAQPartial)
	app.Get("/partials/features", landing.GetFeaturesPartial)
	app.Get("/partials/stats", landing.GetStatsPartial)
	app.Get("/partials/testimonials", landing.GetTestimonialsPartial)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/content", websocket.New(handler.ContentWS))

	app.Get("/api/content", landing.GetContent)
	app.Get("/api/admin/content/export", middleware.BasicAuth(), landing.ExportContent)

	// ===== ADMIN CONTENT API (butuh MySQL) =====
	if hasDB {
		app.Post("/api/auth/login", handler.Login)

		api := app.Group("/api", middleware.JWTAuth())
		api.Post("/logout", handler.Logout)

		admin := api.Group("/admin", middleware.RoleAuth("admin"))

		admin.Get("/faqs", handler.GetAllFAQsPagination)
		admin.Get("/faqs/:id", handler.GetFAQByID)
		admin.Post("/faqs", handler.CreateFAQ)
		admin.Put("/faqs/:id", handler.UpdateFAQ)
		admin.Delete("/faqs/:id", handler.HardDeleteFAQ)

		admin.Get("/features", handler.GetAllFeaturesPagination)
		admin.Get("/features/:id", handler.GetFeatureByID)
		admin.Post("/features", handler.CreateFeature)
		admin.Put("/features/:id", handler.UpdateFeature)
		admin.Delete("/features/:id", handler.HardDeleteFeature)

		admin.Get("/stats", handler.GetAllStatsPagination)
		admin.Get("/stats/:id", handler.GetStatByID)
		admin.Post("/stats", handler.CreateStat)
		admin.Put("/stats/:id", handler.UpdateStat)
		admin.Delete("/stats/:id", handler.HardDeleteStat)

		admin.Get("/testimonials", handler.GetAllTestimonialsPagination)
		admin.Get("/testimonials/:id", handler.GetTestimonialByID)
		admin.Post("/testimonials", handler.CreateTestimonial)
		admin.Put("/testimonials/:id", handler.UpdateTestimonial)
		admin.Delete("/testimonials/:id", handler.HardDeleteTestimonial)
	}

	go func() {
		<-ctx.Done()
		log.Println("[server] shutting down")
		if err := app.Shutdown(); err != nil {
			log.Println("[server] shutdown error:", err)
		}
	}()

	addr := config.GetEnv("APP_HOST", "") + ":" + config.GetEnv("APP_PORT", "8080")
	log.Println("[server] landing jalan di", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
