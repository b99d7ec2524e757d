package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "reconcile-wallets",
		Short: "Retry pending wallet issuance for confirmed orders",
		Long: `Retry wallet issuance recorded in the outbox.

Examples:
  kado24 reconcile-wallets --once
  kado24 reconcile-wallets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := buildApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.close()

			if once {
				n, err := a.reconciler.RunOnce(ctx)
				if err != nil {
					return fmt.Errorf("reconcile: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "processed %d issuance task(s)\n", n)
				return nil
			}
			return a.reconciler.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "process one batch and exit")
	return cmd
}
