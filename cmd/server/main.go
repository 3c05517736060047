package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"watchparty/config"
	_ "watchparty/docs"
	"watchparty/internal/adapters/auth"
	"watchparty/internal/adapters/email"
	"watchparty/internal/adapters/translator"
	"watchparty/internal/chat"
	deliveryhttp "watchparty/internal/delivery/http"
	"watchparty/internal/delivery/http/controllers"
	"watchparty/internal/delivery/http/middleware"
	"watchparty/internal/repository/postgres"
	"watchparty/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Watch Party API
// @version 1.0
// @description Invitation-gated watch party backend: invitations, live chat, polls, tea spills, predictions, and a Regency translator.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.CreateSchema(db); err != nil {
		logger.Error("failed to create schema", "err", err)
		os.Exit(1)
	}
	logger.Info("database schema ready")

	// Repositories
	invitationRepo := postgres.NewInvitationRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	pollRepo := postgres.NewPollRepository(db)
	teaSpillRepo := postgres.NewTeaSpillRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), serviceTimeout)
	if err := pollRepo.Seed(seedCtx, services.DefaultPolls()); err != nil {
		cancelSeed()
		logger.Error("failed to seed polls", "err", err)
		os.Exit(1)
	}
	cancelSeed()

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	adminVerifier := auth.NewAdminKeyVerifier(cfg.AdminKey, cfg.AdminKeyHash)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	invitationService := services.NewInvitationService(invitationRepo, emailService, serviceTimeout)

	room := chat.NewRoom(logger, invitationService, messageRepo)
	roomCtx, stopRoom := context.WithCancel(context.Background())
	defer stopRoom()
	go room.Run(roomCtx)

	chatService := services.NewChatService(invitationRepo, messageRepo, room, serviceTimeout)
	pollService := services.NewPollService(pollRepo, serviceTimeout)
	teaSpillService := services.NewTeaSpillService(teaSpillRepo, serviceTimeout)
	predictionService := services.NewPredictionService(predictionRepo, serviceTimeout)

	translateService := services.NewTranslateService(nil, serviceTimeout)
	if cfg.Translator.APIKey != "" {
		client := translator.NewCompletionClient(nil, cfg.Translator.BaseURL, cfg.Translator.APIKey, cfg.Translator.Model)
		translateService = services.NewTranslateService(client, serviceTimeout)
	} else {
		logger.Warn("translator api key not set; /api/translate will return an error")
	}

	// Delivery
	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Invitations: controllers.NewInvitationController(logger, invitationService, adminVerifier),
		Chat:        controllers.NewChatController(logger, chatService),
		Polls:       controllers.NewPollController(logger, pollService),
		TeaSpills:   controllers.NewTeaSpillController(logger, teaSpillService),
		Predictions: controllers.NewPredictionController(logger, predictionService),
		Translate:   controllers.NewTranslateController(logger, translateService),
	}, chat.ServeWS(logger, room))

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stopRoom()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	logger.Info("server exited")
}
