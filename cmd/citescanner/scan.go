package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"CiteScanner/internal/app"
	"CiteScanner/internal/config"
	"CiteScanner/internal/logging"
	"CiteScanner/pkg/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url>...",
	Short: "Scrape one or more article pages and submit their references",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		slogger := logging.New(cfg.Logging.Level)
		out := logger.New("scan")

		application, err := app.New(cfg, slogger)
		if err != nil {
			return err
		}
		defer application.Close()

		ctx := context.Background()
		failed := 0
		for _, url := range args {
			outcome, err := application.ScanURL(ctx, url)
			if err != nil {
				// Transport and collaborator failures are the
				// user-visible ones; report and keep going.
				out.Printf("%s: failed: %v", url, err)
				failed++
				continue
			}
			out.Printf("%s: %s", url, outcome)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d pages failed", failed, len(args))
		}
		return nil
	},
}
