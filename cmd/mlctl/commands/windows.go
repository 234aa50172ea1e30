package commands

import (
	"github.com/spf13/cobra"

	client "github.com/peteraglen/mojaloop-client"
)

func windowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List, inspect and close settlement windows",
	}

	cmd.AddCommand(listWindowsCmd(), getWindowCmd(), closeWindowCmd())

	return cmd
}

func listWindowsCmd() *cobra.Command {
	var (
		q        client.SettlementWindowsQuery
		currency string
		state    string
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List settlement windows matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			q.Currency = client.Currency(currency)
			q.State = client.SettlementWindowState(state)
			if q.FromDateTime, err = parseTime(from); err != nil {
				return err
			}
			if q.ToDateTime, err = parseTime(to); err != nil {
				return err
			}

			res, err := api.GetSettlementWindows(cmd.Context(), q, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&currency, "currency", "", "currency (ISO 4217)")
	flags.Int64Var(&q.ParticipantID, "participant-id", 0, "participant id")
	flags.StringVar(&state, "state", "", "window state, e.g. OPEN")
	flags.StringVar(&from, "from", "", "created at or after (RFC 3339)")
	flags.StringVar(&to, "to", "", "created at or before (RFC 3339)")

	return cmd
}

func getWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one settlement window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := api.GetSettlementWindow(cmd.Context(), id, callOptions()...)
			return printResult(cmd, res, err)
		},
	}
}

func closeWindowCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "close ID",
		Short: "Close a settlement window and print the window opened in its place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := api.CloseSettlementWindow(cmd.Context(), id, reason, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason for closing")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
