package app

import (
	"invites-backend/internal/auth"
	"invites-backend/internal/config"
	"invites-backend/internal/guests"
	"invites-backend/internal/health"
	"invites-backend/internal/middleware"
	"invites-backend/internal/qr"
	"invites-backend/internal/settings"
	"invites-backend/internal/sheets"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The Sheets client connects lazily on first store call.
func CreateApp(cfg *config.Config) (*fiber.App, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	store := sheets.NewClient(sheets.ClientConfig{
		SheetID:     cfg.SheetID,
		ClientEmail: cfg.ClientEmail,
		PrivateKey:  cfg.PrivateKey,
	})

	// Health (no auth)
	hh := health.NewHandlers(rdb, store)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", middleware.RequireAdmin(), hh.Reset)

	// Auth (no auth middleware): POST login, GET me, DELETE logout
	authHandlers := &auth.Handlers{
		Config:            sessionCfg,
		Rdb:               rdb,
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Guests module
	guestService := &guests.Service{Store: store, Sheet: cfg.GuestSheetName}
	guestHandlers := &guests.Handlers{Service: guestService}

	// Public invite surface
	app.Get("/api/v1/guests/:id", guestHandlers.GetGuest)
	app.Post("/api/v1/rsvp", guestHandlers.UpdateRSVP)
	app.Post("/api/v1/godparent/respond", guestHandlers.GodparentRespond)

	// Admin invite surface
	app.Get("/api/v1/guests", middleware.RequireAdmin(), guestHandlers.ListGuests)
	inviteGroup := app.Group("/api/v1/invites", middleware.RequireAdmin())
	inviteGroup.Post("/generate", guestHandlers.GenerateInvite)
	inviteGroup.Post("/bulk", guestHandlers.BulkInvites)

	// Settings module
	settingsService := &settings.Service{Store: store, Sheet: cfg.SettingsSheetName}
	settingsHandlers := &settings.Handlers{Service: settingsService}
	app.Get("/api/v1/settings", settingsHandlers.GetSettings)
	app.Put("/api/v1/settings", middleware.RequireAdmin(), settingsHandlers.UpdateSettings)

	// QR images for invite links
	qrHandlers := &qr.Handlers{BaseURL: cfg.InviteBaseURL}
	app.Get("/api/v1/qr", qrHandlers.Image)

	return app, rdb, nil
}
