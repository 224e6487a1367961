package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// NewMemberCommand creates the member command.
func NewMemberCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "member",
		Aliases: []string{"me"},
		Short:   "Show your profile",
		Long:    "Display the profile of the member owning the token",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.Member(ctx)
			})
		},
	}
}
