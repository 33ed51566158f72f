package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/developia-II/moderated-translator/internal/config"
	"github.com/developia-II/moderated-translator/internal/handlers"
	"github.com/developia-II/moderated-translator/internal/logger"
	"github.com/developia-II/moderated-translator/internal/metrics"
	"github.com/developia-II/moderated-translator/internal/services"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	l := logger.New(os.Stderr, cfg.Log)
	if envErr != nil {
		l.Debug("No .env file found")
	}

	m := metrics.New()
	ai := services.NewOpenAIService(cfg.OpenAI, nil, l, m)
	translator := services.NewTranslator(ai, l, m)

	app := handlers.NewApp(cfg.Server, translator, m, l)

	l.Info("OPENAI_API_KEY present", "value", cfg.OpenAI.APIKey != "")
	l.Info("models", "moderation", cfg.OpenAI.ModerationModel, "translation", cfg.OpenAI.TranslationModel)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		l.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			l.Error("shutdown", "err", err)
		}
	}()

	l.Info("Server starting", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		l.Fatal("server stopped", "err", err)
	}
}
