package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/access"
	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/internal/database"
	"github.com/diegoclair/slack-shift-bot/internal/domain/service"
	"github.com/diegoclair/slack-shift-bot/internal/handlers"
	"github.com/diegoclair/slack-shift-bot/internal/logger"
	"github.com/diegoclair/slack-shift-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// the configured logger is not available yet
		boot := logger.New("info", true)
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogConsole)
	if envErr != nil {
		log.Warn().Msg(".env file not found")
	}

	db, err := database.New(cfg.DatabasePath, cfg.DatabaseBusy)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("path", cfg.DatabasePath).Msg("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Migrations completed successfully")

	services := service.NewInstance(database.NewInstance(db), cfg.Policy(), log)

	slackClient := slack.New(cfg.SlackBotToken)
	roles := access.New(cfg.AdminUserIDs, cfg.ModeratorUserIDs)
	if roles.OpenModeration() {
		log.Warn().Msg("MODERATOR_USER_IDS is empty: every workspace user can run commands and claim shifts")
	}

	handler := handlers.New(slackClient, services.Schedule, services.Ledger, roles, handlers.Settings{
		SigningSecret:      cfg.SlackSigningSecret,
		AllowedChannelID:   cfg.AllowedChannelID,
		DefaultTimezone:    cfg.DefaultTimezone,
		ClaimRatePerMinute: cfg.ClaimRatePerMinute,
	}, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("POST /slack/interactions", handler.HandleInteraction)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
