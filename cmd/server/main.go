package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jcancelado/fiapp/internal/config"
	"github.com/jcancelado/fiapp/internal/db"
	"github.com/jcancelado/fiapp/internal/es"
	"github.com/jcancelado/fiapp/internal/events"
	"github.com/jcancelado/fiapp/internal/httpserver"
	"github.com/jcancelado/fiapp/internal/logging"
	appmw "github.com/jcancelado/fiapp/internal/middleware"
	"github.com/jcancelado/fiapp/internal/repo"
	"github.com/jcancelado/fiapp/internal/search"
	"github.com/jcancelado/fiapp/internal/service"
	"github.com/jcancelado/fiapp/internal/viewmodel"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	secret := []byte(cfg.SessionSecret)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	logger.Info("storage ready", "driver", cfg.DBDriver)

	gormRepo := &repo.GormRepo{DB: database}

	var publisher service.EventPublisher
	if cfg.KafkaAddress != "" {
		producer := events.NewProducer(strings.Split(cfg.KafkaAddress, ","))
		defer producer.Close()
		publisher = producer
		logger.Info("kafka producer ready", "address", cfg.KafkaAddress)
	}

	var searchSvc *search.Service
	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchSvc = &search.Service{ES: client, Index: cfg.ESIndex}
		logger.Info("search ready", "index", cfg.ESIndex)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
		logger.Info("redis ready", "addr", cfg.RedisAddr)
	}

	authSvc := &service.AuthService{Repo: gormRepo, Events: publisher}
	storeSvc := &service.StoreService{
		Repo:   gormRepo,
		Events: publisher,
		Redis:  rdb,
		Search: searchSvc,
	}
	vm := viewmodel.New(authSvc, storeSvc)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(appmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth:    &httpserver.AuthHTTP{VM: vm, Secret: secret},
		Tendero: &httpserver.TenderoHTTP{VM: vm},
		Cliente: &httpserver.ClienteHTTP{VM: vm},
		Secret:  secret,
	})

	go func() {
		if err := e.Start(cfg.AppPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
