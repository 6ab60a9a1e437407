// Package cli implements fyyurctl, the operator tool for the booking
// directory.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/logging"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnMark = color.New(color.FgYellow, color.Bold).SprintFunc()
)

type options struct {
	envFile string
}

// NewRootCmd builds the fyyurctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "fyyurctl",
		Short: "Operator tool for the Fyyur booking directory",
		Long: `fyyurctl manages a Fyyur database and its companions.

Examples:

  fyyurctl migrate
  fyyurctl seed -f testdata/seed.yaml
  fyyurctl token --subject front-desk --ttl 12h
  fyyurctl consume
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "environment file to load (default .env when present)")

	root.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newTokenCmd(opts),
		newConsumeCmd(opts),
	)
	return root
}

// load reads the env file and configuration shared by every subcommand.
// Logs go to stderr so command output stays clean.
func (o *options) load(stderr io.Writer) (config.Config, *logrus.Logger, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.NewWithWriter(stderr, cfg.Log.Level, cfg.Log.Format), nil
}
