package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	client "github.com/peteraglen/mojaloop-client"
)

func settlementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "List, inspect and create settlements",
	}

	cmd.AddCommand(listSettlementsCmd(), getSettlementCmd(), createSettlementCmd())

	return cmd
}

func listSettlementsCmd() *cobra.Command {
	var (
		q        client.SettlementsQuery
		currency string
		state    string
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List settlements matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			q.Currency = client.Currency(currency)
			q.State = client.SettlementStatus(state)
			if q.FromDateTime, err = parseTime(from); err != nil {
				return err
			}
			if q.ToDateTime, err = parseTime(to); err != nil {
				return err
			}

			res, err := api.GetSettlements(cmd.Context(), q, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&currency, "currency", "", "currency (ISO 4217)")
	flags.Int64Var(&q.ParticipantID, "participant-id", 0, "participant id")
	flags.Int64Var(&q.SettlementWindowID, "window-id", 0, "settlement window id")
	flags.Int64Var(&q.AccountID, "account-id", 0, "participant currency account id")
	flags.StringVar(&state, "state", "", "settlement state, e.g. PENDING_SETTLEMENT")
	flags.StringVar(&from, "from", "", "created at or after (RFC 3339)")
	flags.StringVar(&to, "to", "", "created at or before (RFC 3339)")

	return cmd
}

func getSettlementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := api.GetSettlement(cmd.Context(), id, callOptions()...)
			return printResult(cmd, res, err)
		},
	}
}

func createSettlementCmd() *cobra.Command {
	var (
		model   string
		reason  string
		windows []int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a settlement over one or more closed windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := client.CreateSettlementRequest{
				SettlementModel: model,
				Reason:          reason,
			}
			for _, id := range windows {
				req.SettlementWindows = append(req.SettlementWindows, client.SettlementWindowRef{ID: id})
			}

			res, err := api.CreateSettlement(cmd.Context(), req, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&model, "model", "DEFERREDNET", "settlement model name")
	flags.StringVar(&reason, "reason", "", "settlement reason")
	flags.Int64SliceVar(&windows, "window", nil, "settlement window id (repeatable)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}
