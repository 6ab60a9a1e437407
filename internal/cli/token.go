package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/utils"
)

func newTokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an editor token for the create, edit and delete routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.Editor.Secret == "" {
				return errors.New("EDITOR_JWT_SECRET is not set; editor routes are open")
			}
			if ttl <= 0 {
				ttl = cfg.Editor.TokenTTL
			}
			tok, err := utils.NewEditorToken(cfg.Editor.Secret, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s expires %s\n", okMark("✔"), tok.Exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "editor", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default EDITOR_TOKEN_TTL)")
	return cmd
}
