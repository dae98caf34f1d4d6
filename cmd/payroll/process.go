package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jlsnow301/payroll-app/internal/backend"
	"github.com/jlsnow301/payroll-app/internal/config"
)

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Reconcile and write payroll without the interactive review",
		Long: `Run the full pipeline in one shot: read both exports, match every
delivery to a clock-in, and write the payroll spreadsheet. Every
suggested match is accepted as-is; use 'payroll review' to vet them.`,
		RunE: runProcess,
	}

	cmd.Flags().String("orders", "", "Caterease orders file (required)")
	cmd.Flags().String("hours", "", "Intuit timesheet file (required)")
	cmd.Flags().IntP("precision", "p", 1, "match tolerance in hours (1-5)")

	_ = cmd.MarkFlagRequired("orders")
	_ = cmd.MarkFlagRequired("hours")

	_ = viper.BindPFlag("process.orders", cmd.Flags().Lookup("orders"))
	_ = viper.BindPFlag("process.hours", cmd.Flags().Lookup("hours"))
	_ = viper.BindPFlag("process.precision", cmd.Flags().Lookup("precision"))

	return cmd
}

func runProcess(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc := backend.NewService(config.OutputPath())

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetDescription("Reconciling payroll"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ordersPath := config.ExpandPath(viper.GetString("process.orders"))
	label, err := svc.CatereaseInput(ctx, ordersPath)
	if err != nil {
		return fmt.Errorf("reading orders: %w", err)
	}
	slog.Debug("Orders linked", "label", label)
	_ = bar.Add(1)

	hoursPath := config.ExpandPath(viper.GetString("process.hours"))
	label, err = svc.IntuitInput(ctx, hoursPath)
	if err != nil {
		return fmt.Errorf("reading timesheet: %w", err)
	}
	slog.Debug("Timesheet linked", "label", label)
	_ = bar.Add(1)

	result, err := svc.Submit(ctx, viper.GetInt("process.precision"))
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	_ = bar.Add(1)
	_ = bar.Finish()

	slog.Info("Payroll written",
		"output", config.OutputPath(),
		"matched", result.Matched,
		"skipped", result.Skipped,
		"expanded", result.Expanded,
		"total", result.Total,
	)

	if result.TopUsed != "" {
		slog.Info("Most deliveries", "driver", result.TopUsed, "count", result.TopUsedCount)
	}
	if result.Punctual != "" {
		slog.Info("Most punctual", "driver", result.Punctual, "avg_minutes_off", result.PunctualAvg)
	}
	if result.MostLate != "" {
		slog.Info("Most lates", "driver", result.MostLate, "count", result.MostLateCount)
	}
	if result.HighestLatePercentDriver != "" {
		slog.Info("Highest late rate",
			"driver", result.HighestLatePercentDriver,
			"percent", result.HighestLatePercent,
		)
	}
	if result.LatestClockInDriver != "" {
		slog.Info("Latest arrival",
			"driver", result.LatestClockInDriver,
			"minutes_late", result.LatestClockInDiffMinutes,
		)
	}

	return nil
}
