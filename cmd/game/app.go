package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dungeonexplorer/cmd/game/ui"
	"dungeonexplorer/internal/config"
	"dungeonexplorer/internal/debug"
	"dungeonexplorer/internal/game/director"
	"dungeonexplorer/internal/llm"
	"dungeonexplorer/internal/logging"
	"dungeonexplorer/internal/narration"
	"dungeonexplorer/internal/observability"
	"dungeonexplorer/internal/store"
)

func createApp() (ui.Model, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("load config: %w", err)
	}

	debugLogger := debug.NewLogger(cfg.Debug)
	debugLogger.Println("Starting dungeon explorer with debug logging")

	sessionID := uuid.New().String()
	ctx := observability.WithSessionID(context.Background(), sessionID)

	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	llmService := llm.NewService(cfg.OpenAIAPIKey, cfg.Model, debugLogger)

	generationLogger, err := logging.NewGenerationLogger(cfg.GenerationLogDB)
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("initialize generation logger: %w", err)
	}

	gameDirector := director.NewDirector(llmService, generationLogger, debugLogger)
	fileStore := store.NewFileStore(cfg.SavePath)
	narrator := narration.NewNarrator(cfg.OpenAIAPIKey, debugLogger)

	model := ui.NewModel(ctx, gameDirector, fileStore, narrator, debugLogger, ui.Options{
		NarrationEnabled: cfg.NarrationEnabled,
		NarrationVoice:   cfg.NarrationVoice,
	})

	cleanup := func() {
		if err := generationLogger.Close(); err != nil {
			debugLogger.Printf("Failed to close generation logger: %v", err)
		}
		if tracerProvider != nil {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				debugLogger.Printf("Failed to shut down tracing: %v", err)
			}
		}
	}

	return model, cleanup, nil
}
