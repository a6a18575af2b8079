package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"CiteScanner/internal/config"
	"CiteScanner/internal/infrastructure/storage"
	"CiteScanner/internal/usecase"
)

var modeCmd = &cobra.Command{
	Use:   "mode [confirm|noconfirm]",
	Short: "Show or set the confirmation mode for submissions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		db, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		settings := storage.NewSettingsStore(db)
		ctx := context.Background()

		if len(args) == 0 {
			mode, found, err := settings.Get(ctx, usecase.ModeKey)
			if err != nil {
				return err
			}
			if !found {
				mode = usecase.ModeConfirm
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		}

		mode := args[0]
		if mode != usecase.ModeConfirm && mode != usecase.ModeNoConfirm {
			return fmt.Errorf("unknown mode %q (want confirm or noconfirm)", mode)
		}
		return settings.Set(ctx, usecase.ModeKey, mode)
	},
}
