package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/travel-payments/pkg/config"
	"github.com/chris/travel-payments/pkg/handlers"
	wshandlers "github.com/chris/travel-payments/pkg/handlers/websockets"
	"github.com/chris/travel-payments/pkg/logger"
	appmiddleware "github.com/chris/travel-payments/pkg/middleware"
	"github.com/chris/travel-payments/pkg/notifier"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/chris/travel-payments/pkg/storage/dynamodb"
	"github.com/chris/travel-payments/pkg/storage/memory"
	"github.com/chris/travel-payments/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))
	if !cfg.EnvFileLoaded {
		log.Info().Msg("no .env file found, using environment variables")
	}

	ctx := logger.WithContext(context.Background(), log)

	store, alerts, err := newBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise backend")
	}

	// Local websocket clients receive alerts whatever the backend.
	hub := websockets.NewHub()
	notifiers := notifier.Fanout{websockets.AlertNotifier{Publisher: hub}}
	if alerts != nil {
		notifiers = append(notifiers, alerts)
	} else {
		notifiers = append(notifiers, notifier.LogNotifier{})
	}

	engine := payment.NewEngine(store, notifiers, payment.WithMaxAttempts(cfg.PaymentMaxAttempts))
	handler := handlers.NewApiHandler(engine, store)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(appmiddleware.NewStructuredLogger(log))
	router.Use(middleware.Recoverer)

	router.Handle("/ws", wshandlers.NewLocalHandler(hub))
	handlers.Mount(router, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage_backend", cfg.StorageBackend).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// newBackend builds the configured storage and, when an alert queue is
// configured, the notifier that publishes to it.
func newBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storage.Storage, notifier.Notifier, error) {
	if cfg.StorageBackend == config.BackendMemory {
		store := memory.New()
		seed(store)
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return store, nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), dynamodb.Tables(cfg.Tables))

	if cfg.AlertQueueURL == "" {
		return store, nil, nil
	}
	return store, notifier.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.AlertQueueURL), nil
}
