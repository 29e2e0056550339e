package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/avyukov/cardledger/internal/classify"
	"github.com/avyukov/cardledger/internal/config"
	"github.com/avyukov/cardledger/internal/export"
	"github.com/avyukov/cardledger/internal/logger"
	"github.com/avyukov/cardledger/internal/merge"
)

func main() {
	// Parse CLI flags
	configPath := flag.String("config", "", "Path to YAML config file")
	csvDir := flag.String("csv-dir", "", "Directory of source CSV exports (overrides config)")
	out := flag.String("out", "", "Output CSV path override")
	rules := flag.String("rules", "", "YAML rule file replacing the built-in table")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewWithLevel(*level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *csvDir != "" {
		cfg.CSVDir = *csvDir
	}
	if *rules != "" {
		cfg.RulesFile = *rules
	}
	outPath := cfg.MergedPath()
	if *out != "" {
		outPath = *out
	}

	groups := classify.DefaultGroups()
	if cfg.RulesFile != "" {
		groups, err = classify.LoadGroups(cfg.RulesFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load rule file")
		}
		log.Info().Str("rules", cfg.RulesFile).Int("groups", len(groups)).Msg("Using rule file")
	}

	// Add logger to context
	ctx := logger.WithContext(context.Background(), log)

	log.Info().Str("csv_dir", cfg.CSVDir).Msg("Starting merge")

	records, err := merge.Load(ctx, cfg.CSVDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Merge failed")
	}

	txs := merge.Transactions(records)
	classify.Apply(groups, txs)
	export.SortByDate(txs)

	if err := export.WriteCSV(outPath, txs); err != nil {
		log.Fatal().Err(err).Msg("Failed to write merged ledger")
	}

	labeled := 0
	for _, tx := range txs {
		if tx.Label != tx.Category {
			labeled++
		}
	}
	log.Info().
		Int("transactions", len(txs)).
		Int("relabeled", labeled).
		Str("out", outPath).
		Msg("Merge complete")

	fmt.Printf("Merged %d transactions to %s\n", len(txs), outPath)
}
