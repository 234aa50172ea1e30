package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	client "github.com/peteraglen/mojaloop-client"
)

func participantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participants",
		Short: "Inspect and register ledger participants",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List participants",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := api.GetParticipants(cmd.Context(), callOptions()...)
				return printResult(cmd, res, err)
			},
		},
		&cobra.Command{
			Use:   "get NAME",
			Short: "Show one participant",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := api.GetParticipant(cmd.Context(), args[0], callOptions()...)
				return printResult(cmd, res, err)
			},
		},
		&cobra.Command{
			Use:   "accounts NAME",
			Short: "List a participant's accounts and positions",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := api.GetParticipantAccounts(cmd.Context(), args[0], callOptions()...)
				return printResult(cmd, res, err)
			},
		},
		&cobra.Command{
			Use:   "limits",
			Short: "List participant limits",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := api.GetParticipantsLimits(cmd.Context(), callOptions()...)
				return printResult(cmd, res, err)
			},
		},
		createParticipantCmd(),
		fundsCmd(),
	)

	return cmd
}

func createParticipantCmd() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := api.CreateParticipant(cmd.Context(), client.CreateParticipantRequest{
				Name:     args[0],
				Currency: client.Currency(currency),
			}, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "initial currency (ISO 4217)")

	return cmd
}

func fundsCmd() *cobra.Command {
	var (
		amount    string
		currency  string
		reason    string
		reference string
		out       bool
	)

	cmd := &cobra.Command{
		Use:   "funds NAME ACCOUNT_ID",
		Short: "Record funds in (or out, with --out) of a settlement account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q: %w", args[1], err)
			}

			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			action := client.FundsIn
			if out {
				action = client.FundsOut
			}

			res, err := api.RecordFunds(cmd.Context(), args[0], accountID, client.FundsRequest{
				ExternalReference: reference,
				Action:            action,
				Reason:            reason,
				Amount:            client.Money{Amount: value, Currency: client.Currency(currency)},
			}, callOptions()...)
			return printResult(cmd, res, err)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&amount, "amount", "", "amount, e.g. 1000.50")
	flags.StringVar(&currency, "currency", "", "currency (ISO 4217)")
	flags.StringVar(&reason, "reason", "", "reason for the movement")
	flags.StringVar(&reference, "ref", "", "external reference")
	flags.BoolVar(&out, "out", false, "record funds out instead of in")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency")

	return cmd
}
