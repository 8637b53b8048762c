package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/fenestra/internal/app"
	"github.com/MrJamesThe3rd/fenestra/internal/config"
	fenestraHttp "github.com/MrJamesThe3rd/fenestra/internal/http"
	catalogHandler "github.com/MrJamesThe3rd/fenestra/internal/http/catalog"
	exportHandler "github.com/MrJamesThe3rd/fenestra/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/fenestra/internal/http/importsheet"
	pricebookHandler "github.com/MrJamesThe3rd/fenestra/internal/http/pricebook"
	quotationHandler "github.com/MrJamesThe3rd/fenestra/internal/http/quotation"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start services", "error", err)
		os.Exit(1)
	}
	defer svcs.Close()

	var (
		quotationH = quotationHandler.NewHandler(svcs.Quotations, svcs.Export)
		catalogH   = catalogHandler.NewHandler()
		pricebookH = pricebookHandler.NewHandler(svcs.Pricebook)
		importH    = importHandler.NewHandler(svcs.Importer)
		exportH    = exportHandler.NewHandler(svcs.Export)
	)

	router := fenestraHttp.New(fenestraHttp.Options{
		AuthSecret:     cfg.Auth.Secret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, quotationH, catalogH, pricebookH, importH, exportH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      2 * cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "store", cfg.Store.Driver)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
