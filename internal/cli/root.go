// Package cli implements the mediaq command line. It exposes the query
// registry directly: operations can be listed, built into their GraphQL POST
// body, or executed against AniList through the same transport the gateway
// uses.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
)

const (
	envToken = "ANILIST_TOKEN"

	defaultProfile = "local"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	Profile   string
	ConfigDir string
	BaseURL   string
	Token     string
	Compact   bool
}

// NewRootCommand creates the mediaq root command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mediaq",
		Short: "Build and run AniList GraphQL operations",
		Long: `mediaq drives the AniList query registry from the shell.

Parameters are a JSON object matching the operation's params, passed as the
second argument or read from stdin when the argument is "-".

  mediaq ops
  mediaq build MediaDetails '{"media_id":1}'
  echo '{"type":"ANIME","query":"bebop"}' | mediaq run SearchMedia -`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", config.ProfileFromEnv(defaultProfile),
		"config profile to load (defaults to $"+config.EnvProfile+" or "+defaultProfile+")")
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "configs", "directory holding the config YAML files")
	cmd.PersistentFlags().BoolVar(&opts.Compact, "compact", false, "print JSON on a single line")

	cmd.AddCommand(
		NewOpsCommand(opts),
		NewBuildCommand(opts),
		NewRunCommand(opts),
	)

	return cmd
}
