package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/core/config"
	"slotbook/core/database"
	"slotbook/core/logger"
	"slotbook/core/middleware"
	"slotbook/modules/availability"
	"slotbook/modules/booking"
	"slotbook/modules/eventtype"

	"github.com/labstack/echo/v4"
)

// Run boots config, database, routes and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Log.Level)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second

	mw := middleware.NewMiddleware()
	e.Use(mw.Recover())
	e.Use(mw.CORS())
	e.Use(mw.RequestLogger())

	eventtype.Init(e, db, mw)
	availability.Init(e, db, mw)
	booking.Init(e, db, mw)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
