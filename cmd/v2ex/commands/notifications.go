package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// NewNotificationsCommand creates the notifications command group.
func NewNotificationsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "n"},
		Short:   "Manage notifications",
		Long:    "List and delete notifications of the token owner",
	}

	cmd.AddCommand(newNotificationsListCommand(v))
	cmd.AddCommand(newNotificationsDeleteCommand(v))

	return cmd
}

func newNotificationsListCommand(v *viper.Viper) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notifications",
		Long:    "List the latest notifications, one page at a time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.Notifications(ctx, page)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")

	return cmd
}

func newNotificationsDeleteCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NOTIFICATION_ID",
		Short: "Delete a notification",
		Long: `Delete a notification and print the raw API response.

The API has been observed to accept this request without deleting anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd, v)
			if err != nil {
				return err
			}

			resp, err := client.DeleteNotification(cmd.Context(), id)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", resp.Status(), resp.String())

			return err
		},
	}
}
