package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/database"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the venues, artists and shows tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date (%s)\n", okMark("✔"), cfg.DB.Driver)
			return nil
		},
	}
}
