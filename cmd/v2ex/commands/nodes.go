package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// NewNodesCommand creates the nodes command group.
func NewNodesCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Browse nodes",
		Long:    "Look up nodes and the topics posted in them",
	}

	cmd.AddCommand(newNodesGetCommand(v))
	cmd.AddCommand(newNodesTopicsCommand(v))

	return cmd
}

func newNodesGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get [NODE_NAME]",
		Short: "Get node details",
		Long:  "Display details of a node (python when no name is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.Node(ctx, optionalArg(args))
			})
		},
	}
}

func newNodesTopicsCommand(v *viper.Viper) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "topics [NODE_NAME]",
		Short: "List topics in a node",
		Long:  "List one page of topics in a node (python when no name is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICall(cmd, v, func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error) {
				return client.NodeTopics(ctx, optionalArg(args), page)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")

	return cmd
}
