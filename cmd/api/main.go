package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"forge3d_backend/internal/controller"
	"forge3d_backend/internal/middleware"
	"forge3d_backend/internal/model"
	"forge3d_backend/internal/repository"
	"forge3d_backend/pkg/config"
	"forge3d_backend/pkg/cron"
	"forge3d_backend/pkg/database"
	"forge3d_backend/pkg/email"
	"forge3d_backend/pkg/ratelimit"
)

func setupRoutes(
	app *fiber.App,
	limiter *ratelimit.Limiter,
	contacts *controller.ContactController,
	testimonials *controller.TestimonialController,
	stats *controller.StatsController,
) {
	app.Get("/health", controller.Health)

	limited := middleware.RateLimit(limiter)

	api := app.Group("/api")
	api.Post("/contact", limited, contacts.Create)
	api.Get("/contacts", contacts.List)
	api.Get("/testimonials", testimonials.List)
	api.Post("/testimonials", limited, testimonials.Create)
	api.Get("/stats", stats.Get)
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = database.MigrateDatabase(db,
		&model.ContactRequest{},
		&model.EmailLog{},
		&model.Testimonial{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	mailer := email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	emails, err := email.NewService(mailer, cfg.SMTP.From, cfg.SMTP.To)
	if err != nil {
		log.Fatal("Could not initialize email service:", err)
	}

	contactRepo := repository.NewGormContactRepository(db)
	emailLogRepo := repository.NewGormEmailLogRepository(db)
	testimonialRepo := repository.NewGormTestimonialRepository(db)

	limiter := ratelimit.New(cfg.RateLimit.Max, cfg.RateLimit.Window)

	scheduler := cron.NewScheduler(contactRepo, testimonialRepo, emails, limiter)
	if err := scheduler.Start(); err != nil {
		log.Printf("Could not start cron jobs: %v", err)
	}
	defer scheduler.Stop()

	contactController := controller.NewContactController(contactRepo, emailLogRepo, emails)
	testimonialController := controller.NewTestimonialController(testimonialRepo)
	statsController := controller.NewStatsController(contactRepo, emailLogRepo, testimonialRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"success": false,
					"message": fiberErr.Message,
				})
			}
			log.Printf("Server error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Erreur interne du serveur",
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigin,
		// Fiber refuses credentials together with a wildcard origin.
		AllowCredentials: cfg.Server.CORSOrigin != "*",
	}))

	setupRoutes(app, limiter, contactController, testimonialController, statsController)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route non trouvée",
		})
	})

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
