package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	httpapi "github.com/mevans2120/mm-ec-poc/internal/api/http"
	"github.com/mevans2120/mm-ec-poc/internal/catalog"
	"github.com/mevans2120/mm-ec-poc/internal/catalog/sanity"
	"github.com/mevans2120/mm-ec-poc/internal/config"
	"github.com/mevans2120/mm-ec-poc/internal/fulfillment"
	"github.com/mevans2120/mm-ec-poc/internal/payment"
	"github.com/mevans2120/mm-ec-poc/internal/payment/checkout"
	stripewebhook "github.com/mevans2120/mm-ec-poc/internal/payment/webhook/stripe"
	"github.com/mevans2120/mm-ec-poc/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Constructed-once, injected everywhere. No ambient client singletons: each
	// collaborator receives exactly the clients it needs.
	sanityClient := sanity.NewClient(cfg.SanityProjectID, cfg.SanityDataset, cfg.SanityAPIVersion, "")
	reader := catalog.NewReader(sanity.NewProductStore(sanityClient), logger)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	checkoutSvc := checkout.NewService(gateway, cfg.PublicBaseURL, logger)

	sender := fulfillment.NewResendSender(cfg.ResendAPIKey, logger)
	notifier := fulfillment.NewNotifier(sender, cfg.EmailFrom, logger)

	processor := stripewebhook.New(cfg.StripeWebhookSecret)
	webhookHandler := httpapi.NewWebhookHandler(processor, notifier, cfg.PublicBaseURL, logger)

	pages, err := web.NewPages(logger)
	if err != nil {
		logger.Fatal("failed to parse page templates", zap.Error(err))
	}

	handler := httpapi.NewHandler(reader, checkoutSvc, gateway, webhookHandler, pages, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("storefront stopped")
}
