package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/quiz-backend/internal/config"
	"github.com/stemsi/quiz-backend/internal/handler"
	"github.com/stemsi/quiz-backend/internal/logger"
	"github.com/stemsi/quiz-backend/internal/model"
	"github.com/stemsi/quiz-backend/internal/repository"
	"github.com/stemsi/quiz-backend/internal/router"
	"github.com/stemsi/quiz-backend/internal/service"
	"github.com/stemsi/quiz-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("addr", cfg.Addr()).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting quiz backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Build Question Store ──────────────────────────────────────────
	questions, source, err := loadQuestions(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Failed to load questions")
	}
	questionRepo, err := repository.NewQuestionRepository(questions)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Invalid question set")
	}
	log.Info().Int("count", questionRepo.Len()).Str("source", source).Msg("Question store ready")

	// ─── Initialize Services & Handlers ───────────────────────────────
	questionService := service.NewQuestionService(questionRepo, log)

	handlers := &router.Handlers{
		Question: handler.NewQuestionHandler(questionService),
		Health:   handler.NewHealthHandler(questionService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// loadQuestions returns the configured question set and a label for logs.
func loadQuestions(cfg *config.Config) ([]model.Question, string, error) {
	if cfg.QuestionsFile == "" {
		return repository.DefaultQuestions(), "builtin", nil
	}
	questions, err := repository.LoadQuestionsFile(cfg.QuestionsFile)
	return questions, cfg.QuestionsFile, err
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
