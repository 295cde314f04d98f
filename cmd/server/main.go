package main

import (
	"go.uber.org/zap"

	"mailgate/config"
	"mailgate/internal/db"
	"mailgate/internal/handler"
	"mailgate/internal/httpserver"
	"mailgate/internal/mail"
	"mailgate/internal/repository"
	"mailgate/internal/service"
	"mailgate/pkg/logger"
)

func main() {
	// Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init repositories
	userRepo := repository.NewUserRepository(dbConn)

	// Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	sender := mail.NewSender(cfg.SMTP)
	fetcher := mail.NewFetcher(cfg.IMAP)

	// Init handlers
	authHandler := handler.NewAuthHandler(authService, log)
	mailHandler := handler.NewMailHandler(sender, log)
	emailQueryHandler := handler.NewEmailQueryHandler(fetcher, log)

	// Router
	router := httpserver.NewRouter(authHandler, mailHandler, emailQueryHandler, cfg.JWT.Secret, dbConn, log)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
