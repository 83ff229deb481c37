package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/ledger"
)

type config struct {
	LedgerDir string `long:"ledger-dir" env:"PERMAPRESS_LEDGER_DIR" description:"directory holding the upload ledger" default:"data"`
	Clear     bool   `long:"clear" description:"drop every ledger entry"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("ledgerctl failed", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	store, err := ledger.NewFileStore(cfg.LedgerDir)
	if err != nil {
		return fmt.Errorf("init ledger store: %w", err)
	}
	book, err := ledger.Open(store, logger)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	if cfg.Clear {
		if err := book.Clear(); err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
		fmt.Println("ledger cleared")
		return nil
	}

	entries := book.Entries()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tFILE\tORIGINAL\tPROCESSED\tSAVED%\tNATIVE\tFIAT\tSTATUS\tID")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.FileName,
			entry.OriginalBytes,
			entry.ProcessedBytes,
			entry.SavedPercent,
			entry.NativeCost,
			entry.FiatCost,
			entry.Status,
			entry.SubmissionID,
		)
	}

	agg := book.Aggregate()
	fmt.Fprintf(w, "TOTAL\t%d entries\t%d\t%d\t\t%s\t%s\t\t\n",
		agg.Count, agg.OriginalBytes, agg.ProcessedBytes, agg.NativeCost, agg.FiatCost)
	return w.Flush()
}
