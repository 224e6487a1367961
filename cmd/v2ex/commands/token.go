package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "token",
		Aliases: []string{"tokens"},
		Short:   "Manage personal access tokens",
		Long:    "Show the current personal access token or create a new one",
	}

	cmd.AddCommand(newTokenShowCommand(v))
	cmd.AddCommand(newTokenCreateCommand(v))

	return cmd
}

func newTokenShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current token",
		Long:  "Display details of the token in use: scope, expiration and usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.Token(ctx)
			})
		},
	}
}

func newTokenCreateCommand(v *viper.Viper) *cobra.Command {
	var (
		scope      string
		expiration int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new token",
		Long: `Create a new personal access token. An account can hold at most 10 tokens.

Scope is everything or regular; a regular token cannot create further tokens.
Expiration is one of 2592000, 5184000, 7776000 or 15552000 seconds (30, 60, 90 or 180 days).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.CreateToken(ctx, scope, expiration)
			})
		},
	}

	cmd.Flags().StringVar(&scope, "scope", v2ex.ScopeEverything, "token scope (everything, regular)")
	cmd.Flags().IntVar(&expiration, "expiration", v2ex.Expiration30Days, "token lifetime in seconds")

	return cmd
}
