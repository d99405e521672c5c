package cli

import (
	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build subcommand.
func NewBuildCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <operation> [params]",
		Short: "Print the GraphQL request an operation builds",
		Long: `Build the request for an operation and print its POST body:
operationName, query document and the variables that were set.

Nothing is sent. Unknown operations, unknown param fields and invalid
values are reported as errors.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args)
		},
	}
}

func runBuild(cmd *cobra.Command, opts *RootOptions, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), req, opts.Compact)
}
