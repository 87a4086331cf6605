package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/agenciathoth/checklist/internal/adapter/db"
	httpadapter "github.com/agenciathoth/checklist/internal/adapter/http"
	"github.com/agenciathoth/checklist/internal/adapter/http/handlers"
	httpmiddleware "github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/adapter/storage"
	"github.com/agenciathoth/checklist/internal/app/service"
	"github.com/agenciathoth/checklist/internal/config"
	"github.com/agenciathoth/checklist/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	objectStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		logger.Fatal("failed to set up object storage", zap.Error(err))
	}

	customerRepo := dbadapter.NewCustomerRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	mediaRepo := dbadapter.NewMediaRepository(db)
	commentRepo := dbadapter.NewCommentRepository(db)
	userRepo := dbadapter.NewUserRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	customerService := service.NewCustomerService(customerRepo, taskRepo)
	taskService := service.NewTaskService(taskRepo, customerRepo, mediaRepo, objectStorage)
	mediaService := service.NewMediaService(mediaRepo, taskRepo, customerRepo, objectStorage)
	commentService := service.NewCommentService(commentRepo, taskRepo)
	userService := service.NewUserService(userRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	metrics := httpmiddleware.NewMetrics()
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db, objectStorage),
		Auth:     handlers.NewAuthHandler(authService),
		Customer: handlers.NewCustomerHandler(customerService),
		Task:     handlers.NewTaskHandler(taskService),
		Media:    handlers.NewMediaHandler(mediaService),
		Comment:  handlers.NewCommentHandler(commentService),
		User:     handlers.NewUserHandler(userService),
	}, authService, metrics)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
