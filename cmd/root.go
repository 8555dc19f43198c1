package cmd

import (
	"fmt"
	"os"

	"sales-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sales-reconciler",
	Short: "Sales Reconciliation Service",
	Long: `Sales Reconciler cross-checks recorded sales against the stock ledger.
It reports products whose sold counts drifted from actual sales, products sold
without a ledger row, and ledger rows with no matching sales.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with development timestamps reads better on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
