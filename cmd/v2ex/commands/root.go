package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired       = errors.New("token is required (use --token, V2EX_TOKEN or the config file)")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidID           = errors.New("invalid ID")
)

// NewRootCommand creates the v2ex command tree. Settings are resolved from
// flags, V2EX_* environment variables and $HOME/.v2ex/config.yml, in that
// order of precedence.
func NewRootCommand(version, commit, date string) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "v2ex",
		Short: "V2EX API v2 CLI",
		Long: `A command-line interface for the V2EX API v2.

Tokens are created at https://www.v2ex.com/settings/tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.v2ex/config.yml)")
	flags.StringP("token", "t", "", "personal access token")
	flags.StringP("gateway", "g", v2ex.DefaultBaseURL, "API gateway URL")
	flags.StringP("output", "o", "", "output format (table, json, yaml); defaults to table on a terminal, json otherwise")
	flags.Bool("debug", false, "print raw API responses to stderr")
	flags.BoolP("verbose", "v", false, "log requests to stderr")

	v.SetDefault("user-agent", "v2ex-cli/"+version)

	for _, name := range []string{"config", "token", "gateway", "output", "debug", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(v, version, commit, date))
	rootCmd.AddCommand(NewConfigCommand(v))
	rootCmd.AddCommand(NewNotificationsCommand(v))
	rootCmd.AddCommand(NewMemberCommand(v))
	rootCmd.AddCommand(NewTokenCommand(v))
	rootCmd.AddCommand(NewNodesCommand(v))
	rootCmd.AddCommand(NewTopicsCommand(v))

	return rootCmd
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("V2EX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString("config")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home directory: run on flags and environment only
			return nil
		}

		v.AddConfigPath(filepath.Join(home, ".v2ex"))
		v.SetConfigType("yml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}
