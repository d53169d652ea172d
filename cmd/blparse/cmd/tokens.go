package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/bl/tokenizer"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Show tokens of a file, one per line with its position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, e := openInput(cmd, args[0])
			if e != nil {
				return e
			}
			defer in.Close()

			tz := tokenizer.New(tokenizer.NewSeparators(a.cfg.Tokenizer.Separators))
			ts, e := tz.Read(args[0], in)
			if e != nil {
				return e
			}

			w := cmd.OutOrStdout()
			for _, t := range ts.Tokens() {
				if _, e = fmt.Fprintf(w, "%d:%d\t%s\n", t.Line(), t.Col(), t.Text()); e != nil {
					return e
				}
			}
			return nil
		},
	}
}
