package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
)

// NewOpsCommand creates the ops subcommand.
func NewOpsCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ops",
		Short:         "List the registered operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, op := range query.Operations() {
				if _, err := fmt.Fprintln(out, op); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
