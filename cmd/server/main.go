package main

import (
	"context"
	"log"

	"github.com/examai/exam-service/internal/config"
	"github.com/examai/exam-service/internal/events"
	"github.com/examai/exam-service/internal/generator"
	"github.com/examai/exam-service/internal/handlers"
	"github.com/examai/exam-service/internal/repositories/mongodb"
	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/examai/exam-service/internal/validator"
	"github.com/examai/exam-service/pkg"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "development" {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	repo := mongodb.NewStore(db)

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	serviceManager := services.NewServiceManager(
		repo,
		generator.ForName(cfg.QuestionGenerator),
		publisher,
		validator.New(),
		utils.ToSlogLogger(logger),
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	handlerManager := handlers.NewHandlerManager(serviceManager, repo, cfg, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("starting server",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"question_generator", cfg.QuestionGenerator)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newPublisher(cfg *config.Config, logger utils.Logger) events.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("no kafka brokers configured, event publishing disabled")
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.EventTopic,
		Logger:  utils.ToSlogLogger(logger),
	})
	if err != nil {
		log.Fatalf("failed to create event publisher: %v", err)
	}
	return publisher
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowCredentials = true
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		// Credentials cannot be combined with a literal wildcard.
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}
