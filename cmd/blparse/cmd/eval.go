package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/bl/expr"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an integer expression with + - * / and parentheses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, e := expr.Evaluate(args[0])
			if e != nil {
				return e
			}

			_, e = fmt.Fprintln(cmd.OutOrStdout(), v)
			return e
		},
	}
}
