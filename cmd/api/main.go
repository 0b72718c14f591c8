package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foyerapp/foyer-backend/internal/config"
	"github.com/foyerapp/foyer-backend/internal/handler"
	"github.com/foyerapp/foyer-backend/internal/middleware"
	"github.com/foyerapp/foyer-backend/internal/repository/docstore"
	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/foyerapp/foyer-backend/internal/truelayer"
	"github.com/foyerapp/foyer-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize document store and repositories
	store := docstore.NewPostgresStore(pool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure document schema")
	}
	holderRepo := docstore.NewHolderRepository(store)
	savingRepo := docstore.NewSavingRepository(store)
	elementRepo := docstore.NewBudgetElementRepository(store)

	// WebSocket hub for change events
	hub := websocket.NewHub()

	// Initialize services
	holderService := service.NewHolderService(holderRepo, hub)
	savingService := service.NewSavingService(savingRepo, hub)
	elementService := service.NewBudgetElementService(elementRepo, holderRepo, savingService, hub)
	dashboardService := service.NewDashboardService(elementService, savingService)

	bankClient := truelayer.NewClient(truelayer.Config{
		ClientID:     cfg.TrueLayer.ClientID,
		ClientSecret: cfg.TrueLayer.ClientSecret,
		RedirectURI:  cfg.TrueLayer.RedirectURI,
		AuthURL:      cfg.TrueLayer.AuthURL,
		APIURL:       cfg.TrueLayer.APIURL,
	})
	sessions := service.NewSessionStore()
	defer sessions.Stop()
	bankService := service.NewBankService(bankClient, sessions)

	// Initialize handlers
	holderHandler := handler.NewHolderHandler(holderService)
	savingHandler := handler.NewSavingHandler(savingService)
	elementHandler := handler.NewBudgetElementHandler(elementService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	bankHandler := handler.NewBankHandler(bankService, cfg.ClientOrigin)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	bankLimiter := middleware.NewRateLimiter()
	defer bankLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, bankLimiter, holderHandler, savingHandler, elementHandler, dashboardHandler, bankHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
