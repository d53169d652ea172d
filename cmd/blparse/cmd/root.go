package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ava12/bl/config"
	"github.com/ava12/bl/internal/logging"
	"github.com/ava12/bl/parser"
)

type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCmd builds the command tree, each call returns independent commands.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "blparse",
		Short: "BL program tokenizer and parser",
		Long: `blparse reads BL programs, checks their grammar, and shows the parsed structure.

A BL program is

  PROGRAM <name> IS
    {INSTRUCTION <name> IS <block> END <name>}
  BEGIN
    <block>
  END <name>`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML), default settings if omitted")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log parser progress to stderr")

	root.AddCommand(a.parseCmd(), a.tokensCmd(), evalCmd(), versionCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile == "" {
		a.cfg = config.Default()
	} else {
		cfg, e := config.Load(a.cfgFile)
		if e != nil {
			return e
		}
		a.cfg = cfg
	}

	logCfg := a.cfg.Log
	if a.verbose {
		logCfg.Level = "debug"
	}
	a.log = logging.New(logCfg, cmd.ErrOrStderr()).With("run", uuid.NewString())
	return nil
}

func (a *app) newParser() *parser.Parser {
	return parser.New(a.cfg.ParserOptions(a.log))
}

// openInput returns the named file or stdin for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, e := os.Open(name)
	if e != nil {
		return nil, fmt.Errorf("cannot open input: %w", e)
	}
	return f, nil
}
