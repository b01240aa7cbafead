package app

import (
	"krushi-backend/internal/admin"
	"krushi-backend/internal/auth"
	"krushi-backend/internal/config"
	"krushi-backend/internal/database"
	"krushi-backend/internal/equipment"
	"krushi-backend/internal/jobs"
	"krushi-backend/internal/market"
	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/constants"
	"krushi-backend/internal/profiles"
	"krushi-backend/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis clients for startup pings.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	// Session (Redis)
	sessionCfg := middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return nil, nil, nil, err
		}
		if err := database.SeedMarketPrices(db); err != nil {
			return nil, nil, nil, err
		}
	}

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Krushi API is running"})
	})

	if db == nil {
		return app, nil, rdb, nil
	}

	// Identity (no auth middleware on register/login)
	authHandlers := &auth.Handlers{
		Service: &auth.Service{DB: db},
		Rdb:     rdb,
		Config:  sessionCfg,
	}
	users := app.Group("/api/users")
	users.Post("/register", authHandlers.Register)
	users.Post("/login", authHandlers.Login)
	users.Get("/me", middleware.RequireAuth(), authHandlers.Me)
	users.Delete("/logout", middleware.RequireAuth(), authHandlers.Logout)

	equipmentHandlers := &equipment.Handlers{Service: &equipment.Service{DB: db}}
	jobHandlers := &jobs.Handlers{Service: &jobs.Service{DB: db}}
	requestHandlers := &requests.Handlers{Service: &requests.Service{DB: db}}
	profileHandlers := &profiles.Handlers{Service: &profiles.Service{DB: db}}
	marketHandlers := &market.Handlers{Service: &market.Service{DB: db}}

	// Farmer module: discovery, booking requests, job postings, application decisions
	farmer := app.Group("/api/farmer", middleware.RequireAuth(), middleware.RequireRole(constants.RoleFarmer))
	farmer.Get("/equipment", equipmentHandlers.ListAvailable)
	farmer.Post("/equipment/book", requestHandlers.BookEquipment)
	farmer.Get("/bookings", requestHandlers.FarmerBookings)
	farmer.Post("/jobs", jobHandlers.Create)
	farmer.Get("/jobs", jobHandlers.ListOwn)
	farmer.Patch("/jobs/:id/close", jobHandlers.Close)
	farmer.Get("/applications/:jobId", requestHandlers.JobApplications)
	farmer.Patch("/applications/:id/accept", requestHandlers.AcceptApplication)
	farmer.Patch("/applications/:id/reject", requestHandlers.RejectApplication)

	// Seller module: listings and the booking decision queue
	seller := app.Group("/api/seller", middleware.RequireAuth(), middleware.RequireRole(constants.RoleSeller))
	seller.Get("/equipment", equipmentHandlers.ListOwn)
	seller.Post("/equipment", equipmentHandlers.Create)
	seller.Put("/equipment/:id", equipmentHandlers.Update)
	seller.Patch("/equipment/:id/status", equipmentHandlers.SetStatus)
	seller.Get("/bookings", requestHandlers.SellerBookings)
	seller.Patch("/bookings/:id/accept", requestHandlers.AcceptBooking)
	seller.Patch("/bookings/:id/reject", requestHandlers.RejectBooking)

	// Labourer module: job discovery, applications, profile
	labourer := app.Group("/api/labourer", middleware.RequireAuth(), middleware.RequireRole(constants.RoleLabourer))
	labourer.Get("/jobs", jobHandlers.ListOpen)
	labourer.Get("/jobs/skill/:skill", jobHandlers.ListOpenBySkill)
	labourer.Post("/jobs/:id/apply", requestHandlers.Apply)
	labourer.Get("/applications", requestHandlers.LabourerApplications)
	labourer.Post("/profile", profileHandlers.Upsert)

	// Profile lookup is open to any authenticated role (farmers vet applicants)
	app.Get("/api/labourer/profile/:id", middleware.RequireAuth(), profileHandlers.Get)

	// Market prices: any authenticated user
	app.Get("/api/market/prices", middleware.RequireAuth(), marketHandlers.ListPrices)

	// Admin audit interface: credentials in every request body, no session
	adminHandlers := &admin.Handlers{Service: &admin.Service{DB: db}}
	adminGroup := app.Group("/api/admin")
	adminGroup.Post("/login", adminHandlers.Login)
	adminGroup.Post("/records", adminHandlers.Records)
	adminGroup.Post("/delete", adminHandlers.Delete)

	return app, db, rdb, nil
}
