package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"schoolpulse/cmd"
	"schoolpulse/internal/ask"
	"schoolpulse/internal/config"
	"schoolpulse/internal/store"
)

var logger *slog.Logger

// setupLogger creates and configures the application logger
func setupLogger() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger = slog.New(handler)
}

// newProviders builds the two-provider fallback chain from configuration.
// A provider whose client cannot be constructed (missing key, bad config)
// becomes a broken stub that fails terminally at call time, so the chain is
// always two entries long and nothing crashes at startup.
func newProviders(ctx context.Context, cfg *config.Config) (ask.Provider, ask.Provider) {
	var primary ask.Provider
	primary, err := ask.NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, logger)
	if err != nil {
		logger.Warn("Primary provider unavailable", "error", err)
		primary = ask.NewBrokenProvider(ask.ProviderPrimary, err)
	}

	var secondary ask.Provider
	secondary, err = ask.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		logger.Warn("Secondary provider unavailable", "error", err)
		secondary = ask.NewBrokenProvider(ask.ProviderSecondary, err)
	}

	return primary, secondary
}

func main() {
	setupLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	primary, secondary := newProviders(ctx, cfg)
	pipeline := ask.NewPipeline(primary, secondary, logger)

	// Inject run functions into the cmd package (see cmd/shared.go).
	cmd.RunServe = func(port int) error {
		if port == 0 {
			port = cfg.Port
		}
		st, err := store.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()
		return StartServer(ServerConfig{Port: port, Pipeline: pipeline, Store: st})
	}

	cmd.RunAsk = func(question, schoolID string) error {
		st, err := store.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		result := pipeline.Answer(ctx, question, schoolID, st)
		if !result.Success {
			fmt.Println(result.Error)
			return nil
		}
		fmt.Println(result.Answer)
		return nil
	}

	cmd.Execute()
}
