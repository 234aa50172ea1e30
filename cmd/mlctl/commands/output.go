package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	client "github.com/peteraglen/mojaloop-client"
)

type taggedOutput struct {
	Kind  string                `json:"kind"`
	Body  any                   `json:"body,omitempty"`
	Error *client.ErrorResponse `json:"error,omitempty"`
}

// printResult writes the outcome of an operation as indented JSON. With
// --tagged the result envelope is printed; otherwise only the payload.
func printResult[T any](cmd *cobra.Command, res client.Result[T], err error) error {
	if err != nil {
		return err
	}

	var out any = res.Body
	if cfg.Tagged {
		tagged := taggedOutput{Kind: res.Kind.String()}
		if res.OK() {
			tagged.Body = res.Body
		} else {
			tagged.Error = res.Error
		}
		out = tagged
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
