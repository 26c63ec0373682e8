package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/koolheads/orders-service/internal/application"
	"github.com/koolheads/orders-service/internal/config"
	"github.com/koolheads/orders-service/internal/logger"
	"github.com/koolheads/orders-service/internal/mail"
	"github.com/koolheads/orders-service/internal/paystack"
	"github.com/koolheads/orders-service/internal/presentation"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}
	if cfg.SMTP_USER == "" {
		logger.Warn("SMTP_USER not set, email dispatch will fail")
	}
	if cfg.PAYSTACK_SECRET == "" {
		logger.Warn("PAYSTACK_SECRET not set, payment verification will fail")
	}

	mailer, err := mail.NewSMTPMailer(cfg.SMTP_HOST, cfg.SMTP_PORT, cfg.SMTP_USER, cfg.SMTP_PASS)
	if err != nil {
		logger.Warn("mailer init failed", "err", err)
		os.Exit(1)
	}

	// Readiness probe only; startup and request handling never wait on it.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := mailer.SelfCheck(ctx); err != nil {
			logger.Warn("mailer self-check failed", "err", err)
			return
		}
		logger.Info("mailer ready")
	}()

	gateway := paystack.NewClient(cfg.PAYSTACK_SECRET, cfg.PAYSTACK_BASE_URL)

	// Wiring
	svc := application.NewOrdersService(mailer, gateway, cfg.SMTP_USER, cfg.ADMIN_EMAIL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API
	h := presentation.NewOrdersHandler(svc)
	h.Register(r)

	// STATIC (web/index.html)
	presentation.MountStatic(r)

	addr := ":" + cfg.HTTP_PORT
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}
