package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/avyukov/cardledger/internal/config"
	"github.com/avyukov/cardledger/internal/extract"
	"github.com/avyukov/cardledger/internal/logger"
)

func main() {
	// Parse CLI flags
	configPath := flag.String("config", "", "Path to YAML config file")
	model := flag.String("model", "", "Model name override")
	out := flag.String("out", "", "Output CSV path override")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewWithLevel(*level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *model != "" {
		cfg.ModelName = *model
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("Error: GEMINI_API_KEY is required for extraction")
	}
	if len(cfg.StatementDirs) == 0 {
		log.Fatal().Msg("Error: no statement_dirs configured; nothing to extract")
	}

	outPath := cfg.ExtractedPath()
	if *out != "" {
		outPath = *out
	}

	// Create context with timeout so CLI doesn't hang
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// Add logger to context
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Str("model", cfg.ModelName).
		Int("folders", len(cfg.StatementDirs)).
		Msg("Starting statement extraction")

	client, err := extract.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create model client")
	}

	extractor := extract.NewExtractor(client, logger.ForComponent(log, "extract"))
	records, err := extractor.ProcessFolders(ctx, cfg.OriginPrefix, cfg.StatementDirs)
	if err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}

	if err := extract.WriteCanonicalCSV(outPath, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write extraction output")
	}

	fmt.Printf("Extracted %d transactions to %s\n", len(records), outPath)
}
