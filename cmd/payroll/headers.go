package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jlsnow301/payroll-app/internal/backend"
	"github.com/jlsnow301/payroll-app/internal/config"
)

func headersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headers",
		Short: "Print the column headers each export must carry",
		RunE:  runHeaders,
	}
}

func runHeaders(cmd *cobra.Command, _ []string) error {
	svc := backend.NewService(config.OutputPath())
	expected := svc.Headers(cmd.Context())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Caterease orders export:")
	fmt.Fprintf(out, "  %s\n", strings.Join(expected.Caterease, ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Intuit timesheet export:")
	fmt.Fprintf(out, "  %s\n", strings.Join(expected.Intuit, ", "))

	return nil
}
