package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ava12/bl/ast"
)

func (a *app) parseCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a BL program and show its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, e := openInput(cmd, args[0])
			if e != nil {
				return e
			}
			defer in.Close()

			prog, e := a.newParser().ParseReader(args[0], in)
			if e != nil {
				return e
			}

			return writeProgram(cmd.OutOrStdout(), prog, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "summary", "output format: summary, yaml, or json")
	return cmd
}

func writeProgram(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case "summary":
		return writeSummary(w, prog)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(prog); e != nil {
			return e
		}
		return enc.Close()
	case "json":
		out, e := json.MarshalIndent(prog.View(), "", "  ")
		if e != nil {
			return e
		}
		_, e = fmt.Fprintln(w, string(out))
		return e
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func writeSummary(w io.Writer, prog *ast.Program) error {
	statements := ast.CountStatements(prog.Body)
	depth := ast.Depth(prog.Body)
	for _, name := range prog.Order {
		body := prog.Context[name]
		statements += ast.CountStatements(body)
		if d := ast.Depth(body); d > depth {
			depth = d
		}
	}

	_, e := fmt.Fprintf(w, "program:         %s\ninstructions:    %s\nstatements:      %d\nmax depth:       %d\nundefined calls: %s\n",
		prog.Name, listOrNone(prog.Order), statements, depth, listOrNone(ast.UndefinedCalls(prog)))
	return e
}
