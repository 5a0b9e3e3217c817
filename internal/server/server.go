// Package server boots the application: configuration, stores, the order
// bridge, the optional bot runtime, and the HTTP kernel.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/database/seeders"
	"github.com/shashiranjanraj/altindan/internal/bot"
	"github.com/shashiranjanraj/altindan/internal/bridge"
	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
	"github.com/shashiranjanraj/altindan/internal/web"
	"github.com/shashiranjanraj/altindan/pkg/cache"
	"github.com/shashiranjanraj/altindan/pkg/logger"
	"github.com/shashiranjanraj/altindan/pkg/storage"
)

// App is the wired application.
type App struct {
	Catalog  *catalog.Provider
	Store    *order.Store
	Settings *settings.Store
	Intake   *order.Intake
	Bot      *bot.Bot
}

// Build wires stores and services. The bot is nil when BOT_TOKEN is unset or
// authentication fails; everything web-side still works.
func Build() (*App, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: config: %w", err)
	}
	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		return nil, fmt.Errorf("server: data dir: %w", err)
	}

	cache.Connect()
	storage.Connect()

	cat := catalog.NewProvider(config.DataDir())
	store := order.NewStore(config.DataDir())
	st := settings.NewStore(config.DataDir())

	if err := cat.Seed(seeders.Products()); err != nil {
		return nil, fmt.Errorf("server: seed products: %w", err)
	}
	if err := st.SeedAdmins(seeders.Admins()); err != nil {
		return nil, fmt.Errorf("server: seed admins: %w", err)
	}

	app := &App{Catalog: cat, Store: store, Settings: st}

	if config.BotToken() == "" {
		logger.Warn("server: BOT_TOKEN not set, running web-only (no notifications)")
		app.Intake = order.NewIntake(cat, store, nil)
		return app, nil
	}

	br := bridge.Connect()
	app.Intake = order.NewIntake(cat, store, br)

	b, err := bot.New(app.Intake, store, st, br)
	if err != nil {
		// The shop must keep taking orders even when Telegram is down.
		logger.Error("server: bot auth failed, running web-only", "error", err)
		app.Intake = order.NewIntake(cat, store, nil)
		return app, nil
	}
	app.Bot = b

	return app, nil
}

// Run boots the application and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	app, err := Build()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if app.Bot != nil {
		go app.Bot.Run(ctx)
	}

	handler := web.NewServer(app.Catalog, app.Store, app.Intake, app.Settings).Routes().Handler()
	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("server: shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
