package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(v *viper.Viper, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the v2ex CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, map[string]any{
				"version": version,
				"commit":  commit,
				"built":   date,
			})
		},
	}
}
