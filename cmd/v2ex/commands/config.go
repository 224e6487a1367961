package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const masked = "***"

// NewConfigCommand creates the config command group.
func NewConfigCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  "Inspect the settings resolved from flags, V2EX_* environment variables and the config file",
	}

	cmd.AddCommand(newConfigShowCommand(v))

	return cmd
}

func newConfigShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Display the effective configuration with the token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, effectiveConfig(v))
		},
	}
}

func effectiveConfig(v *viper.Viper) map[string]any {
	token := ""
	if v.GetString("token") != "" {
		token = masked
	}

	return map[string]any{
		"config_file": v.ConfigFileUsed(),
		"token":       token,
		"gateway":     v.GetString("gateway"),
		"output":      v.GetString("output"),
		"debug":       v.GetBool("debug"),
		"verbose":     v.GetBool("verbose"),
		"user_agent":  v.GetString("user-agent"),
	}
}
