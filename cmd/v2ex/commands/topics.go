package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// NewTopicsCommand creates the topics command group.
func NewTopicsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics",
		Aliases: []string{"topic", "t"},
		Short:   "Read topics",
		Long:    "Look up topics and their replies",
	}

	cmd.AddCommand(newTopicsGetCommand(v))
	cmd.AddCommand(newTopicsRepliesCommand(v))

	return cmd
}

func newTopicsGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get [TOPIC_ID]",
		Short: "Get topic details",
		Long:  "Display a topic with its author and node (topic 1 when no ID is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.Topic(ctx, optionalArg(args))
			})
		},
	}
}

func newTopicsRepliesCommand(v *viper.Viper) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "replies [TOPIC_ID]",
		Short: "List replies to a topic",
		Long:  "List one page of replies to a topic (topic 1 when no ID is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.TopicReplies(ctx, optionalArg(args), page)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")

	return cmd
}
