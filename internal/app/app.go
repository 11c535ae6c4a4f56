package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"
	_ "modernc.org/sqlite"

	"eventdesk/internal/auth"
	"eventdesk/internal/config"
	"eventdesk/internal/credstore"
	"eventdesk/internal/handler"
	"eventdesk/internal/middleware"
	"eventdesk/internal/notification"
	"eventdesk/internal/router"
	"eventdesk/internal/service"
	"eventdesk/internal/upstream"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *sql.DB
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"eventdesk",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := sql.Open("sqlite", a.cfg.Credentials.Path)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	if err := credstore.InitSchema(db); err != nil {
		return fmt.Errorf("init credential schema: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "credential store opened",
		logger.String("path", a.cfg.Credentials.Path),
	)

	return nil
}

func (a *App) initServices() error {
	store := credstore.NewSQLiteStore(a.db)
	client := upstream.New(a.cfg.Upstream, a.log)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	authService := service.NewAuthService(client, store, a.log)
	dashboardService := service.NewDashboardService(client, n, a.log)
	facilitatorService := service.NewFacilitatorService(client, a.log)

	resolver := auth.NewResolver(store, a.log)

	h := handler.NewHandler(authService, dashboardService, facilitatorService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RouteGuard(resolver, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close credential store: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "credential store closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
