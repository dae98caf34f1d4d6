package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jlsnow301/payroll-app/internal/backend"
	"github.com/jlsnow301/payroll-app/internal/config"
	"github.com/jlsnow301/payroll-app/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively reconcile orders against timesheets",
		Long: `Open the interactive reconciler. Load the Caterease orders export and
the Intuit timesheet export, inspect the suggested matches, deny the
ones that look wrong, and write the payroll spreadsheet.`,
		RunE: runReview,
	}

	cmd.Flags().String("orders", "", "Caterease orders file to load on startup")
	cmd.Flags().String("hours", "", "Intuit timesheet file to load on startup")

	_ = viper.BindPFlag("review.orders", cmd.Flags().Lookup("orders"))
	_ = viper.BindPFlag("review.hours", cmd.Flags().Lookup("hours"))

	return cmd
}

func runReview(cmd *cobra.Command, _ []string) error {
	svc := backend.NewService(config.OutputPath())

	err := tui.Run(cmd.Context(), tui.Config{
		Backend:    svc,
		OrdersPath: config.ExpandPath(viper.GetString("review.orders")),
		HoursPath:  config.ExpandPath(viper.GetString("review.hours")),
	})
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}
	return nil
}
