package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report SETTLEMENT_ID",
		Short: "Download the settlement initiation report (xlsx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			report, err := api.GetSettlementInitiationReport(cmd.Context(), id)
			if err != nil {
				return err
			}

			if report.StatusCode != http.StatusOK {
				return fmt.Errorf("report request returned %d: %s", report.StatusCode, report.Body)
			}

			if output == "" {
				output = fmt.Sprintf("settlement-initiation-%d.xlsx", id)
			}

			if err := os.WriteFile(output, report.Body, 0o600); err != nil {
				return err
			}

			logger.Info().Str("file", output).Int("bytes", len(report.Body)).Msg("report written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default settlement-initiation-<id>.xlsx)")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Query the service health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := api.Health(cmd.Context(), callOptions()...)
			return printResult(cmd, res, err)
		},
	}
}
