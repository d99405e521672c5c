package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// ErrGraphQL is returned by run when AniList answered with GraphQL errors.
// The reply is still printed.
var ErrGraphQL = errors.New("anilist reported errors")

// NewRunCommand creates the run subcommand.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <operation> [params]",
		Short: "Execute an operation against AniList",
		Long: `Build the request for an operation, send it through the configured
AniList client and print the reply.

Viewer operations such as AiringOnMyList need an access token, taken from
--token or $ANILIST_TOKEN.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "override client.base_url")
	cmd.Flags().StringVar(&opts.Token, "token", "", "AniList access token (defaults to $ANILIST_TOKEN)")

	return cmd
}

func runRun(cmd *cobra.Command, opts *RootOptions, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	injector, err := newInjector(cmd, opts)
	if err != nil {
		return err
	}

	client, err := do.Invoke[*graphql.Client](injector)
	if err != nil {
		return fmt.Errorf("resolving client: %w", err)
	}

	ctx := cmd.Context()
	token := opts.Token
	if token == "" {
		token = os.Getenv(envToken)
	}
	if token != "" {
		ctx = httpclient.WithAccessToken(ctx, token)
	}

	resp, err := client.Execute(ctx, req)
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.OutOrStdout(), resp, opts.Compact); err != nil {
		return err
	}
	if resp.HasErrors() {
		return fmt.Errorf("%s: %w: %s", req.Operation, ErrGraphQL, resp.Errors[0].Message)
	}
	return nil
}

// newInjector wires config, logger and the AniList transport. Logs go to
// the command's stderr so stdout stays machine readable.
func newInjector(cmd *cobra.Command, opts *RootOptions) (*do.RootScope, error) {
	cfg, err := config.Load(opts.Profile, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.Client.BaseURL = opts.BaseURL
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	do.Provide(injector, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, "anilist", nil, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*graphql.Client, error) {
		return graphql.New(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	return injector, nil
}
