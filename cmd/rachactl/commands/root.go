package commands

import (
	"github.com/spf13/cobra"

	"racha/internal/backend"
	"racha/internal/cli"
	"racha/internal/config"
	"racha/internal/log"
	"racha/internal/services"
)

var (
	cfg     *config.Config
	svc     *services.Ledger
	cleanup backend.CleanupFunc
)

func Execute() error {
	root := &cobra.Command{
		Use:           "rachactl",
		Short:         "Shared expense ledger CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.LoadEnvFile()

			logger := log.New(log.Config{
				Level:     log.ParseLevel("warn"),
				Component: log.ComponentCLI,
				Format:    "text",
			})
			log.SetDefault(logger)

			cfg = cli.LoadAndValidateConfig(logger)
			ledger, c, err := cli.OpenLedger(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			cleanup = c
			svc = services.New(ledger, nil)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	root.AddCommand(
		personCmd(),
		categoryCmd(),
		expenseCmd(),
		paymentCmd(),
		balancesCmd(),
		modeCmd(),
		summaryCmd(),
		eventsCmd(),
	)
	return root.Execute()
}
