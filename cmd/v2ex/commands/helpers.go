package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

type apiCall func(ctx context.Context, client *v2ex.Client) (v2ex.Result, error)

// runAPICall resolves the output format, performs call and renders the
// decoded response.
func runAPICall(cmd *cobra.Command, v *viper.Viper, call apiCall) error {
	format, err := outputFormat(v, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	client, err := newClient(cmd, v)
	if err != nil {
		return err
	}

	result, err := call(cmd.Context(), client)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), format, result)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return ""
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	return id, nil
}
