package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/avyukov/cardledger/internal/config"
	"github.com/avyukov/cardledger/internal/domain"
	"github.com/avyukov/cardledger/internal/logger"
	"github.com/avyukov/cardledger/internal/report"
)

func main() {
	// Parse CLI flags
	configPath := flag.String("config", "", "Path to YAML config file")
	in := flag.String("in", "", "Merged ledger path override")
	top := flag.Int("top", 10, "Number of label buckets to print")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewWithLevel(*level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	path := cfg.MergedPath()
	if *in != "" {
		path = *in
	}

	txs, err := report.Load(path)
	if err != nil {
		var missing *domain.MissingInputError
		if errors.As(err, &missing) {
			log.Error().Str("path", missing.Path).Msg("Merged ledger not found; run the merge first")
			return
		}
		log.Fatal().Err(err).Msg("Failed to read merged ledger")
	}

	s := report.Summarize(txs)

	fmt.Printf("Transactions: %d  Total: $%.2f\n", s.Transactions, s.Total)
	if s.FirstDate.IsValid() {
		fmt.Printf("Date range:   %s .. %s\n", s.FirstDate, s.LastDate)
	}

	fmt.Println("\nBy label:")
	for i, b := range s.ByLabel {
		if i >= *top {
			fmt.Printf("  ... and %d more\n", len(s.ByLabel)-i)
			break
		}
		fmt.Printf("  %-35s %4d  $%10.2f\n", b.Key, b.Count, b.Total)
	}

	fmt.Println("\nBy origin:")
	for _, b := range s.ByOrigin {
		fmt.Printf("  %-35s %4d  $%10.2f\n", b.Key, b.Count, b.Total)
	}
}
