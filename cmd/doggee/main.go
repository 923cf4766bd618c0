package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/doggee/internal/config"
	"github.com/Skotchmaster/doggee/internal/db"
	"github.com/Skotchmaster/doggee/internal/hash"
	"github.com/Skotchmaster/doggee/internal/httpserver"
	"github.com/Skotchmaster/doggee/internal/logging"
	authmw "github.com/Skotchmaster/doggee/internal/middleware/auth"
	"github.com/Skotchmaster/doggee/internal/mykafka"
	"github.com/Skotchmaster/doggee/internal/repo"
	"github.com/Skotchmaster/doggee/internal/service"
	"github.com/Skotchmaster/doggee/internal/tokens"
	"github.com/Skotchmaster/doggee/internal/validation"
)

type publisher interface {
	service.EventPublisher
	Close() error
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var events publisher = mykafka.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		topicCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mykafka.EnsureTopics(topicCtx, cfg.KafkaBrokers[0], service.TopicUserEvents, service.TopicDogEvents); err != nil {
			logger.Warn("kafka topics not ensured", "error", err)
		}
		cancel()

		prod, err := mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer error: %v", err)
		}
		events = prod
	} else {
		logger.Info("no kafka brokers configured, domain events are dropped")
	}

	codec := tokens.NewCodec(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	codec.AccessTTL = cfg.AccessTTL
	codec.RefreshTTL = cfg.RefreshTTL

	r := repo.New(gdb)
	v := validation.New()

	e := httpserver.New(&httpserver.Deps{
		Logger: logger,
		Gate:   authmw.NewGate(codec),
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Repo:      r,
			Tokens:    codec,
			Hasher:    hash.Bcrypt{Cost: cfg.BcryptCost},
			Validator: v,
			Events:    events,
		}},
		UserHandler:   &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		DogHandler:    &httpserver.DogHTTP{Svc: &service.DogService{Repo: r, Validator: v, Events: events}},
		CORSOrigins:   cfg.CORSOrigins,
		AuthRateLimit: cfg.AuthRateLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close error", "error", err)
	}
	if err := events.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
