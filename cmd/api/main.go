package main

import (
	"log"
	"time"

	config "github.com/anjiri1684/quick_stay/configs"
	"github.com/anjiri1684/quick_stay/database"
	"github.com/anjiri1684/quick_stay/handlers"
	"github.com/anjiri1684/quick_stay/jobs"
	"github.com/anjiri1684/quick_stay/notifications"
	"github.com/anjiri1684/quick_stay/payments"
	"github.com/anjiri1684/quick_stay/routes"
	"github.com/anjiri1684/quick_stay/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedDemoHotel()

	notifier := notifications.NewBrevoService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
	)
	gateway := payments.NewStripeClient(
		config.Config("STRIPE_SECRET_KEY"),
		config.Config("STRIPE_API_BASE_URL"),
	)

	bookingService := services.NewBookingService(database.DB, notifier)
	paymentService := services.NewPaymentService(database.DB, gateway)
	dashboardService := services.NewDashboardService(database.DB, bookingService)

	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	hotelHandler := handlers.NewHotelHandler(dashboardService)

	reminderJob := &jobs.ReminderJob{DB: database.DB, Notifier: notifier}
	c := cron.New()
	c.AddFunc("0 8 * * *", reminderJob.Run)
	go c.Start()
	log.Println("✅ Cron job for check-in reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "QuickStay",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to QuickStay API",
		})
	})

	routes.AuthRoutes(app)
	routes.HotelRoutes(app, hotelHandler)
	routes.BookingRoutes(app, bookingHandler)
	routes.PaymentRoutes(app, paymentHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
