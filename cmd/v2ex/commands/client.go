package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v2ex "github.com/v2exapi/v2ex-go-client"
)

// newClient builds an API client from the resolved settings.
func newClient(cmd *cobra.Command, v *viper.Viper) (*v2ex.Client, error) {
	token := v.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	opts := []v2ex.Option{
		v2ex.WithBaseURL(v.GetString("gateway")),
		v2ex.WithDebug(v.GetBool("debug")),
		v2ex.WithDebugOutput(cmd.ErrOrStderr()),
		v2ex.WithUserAgent(v.GetString("user-agent")),
	}

	if v.GetBool("verbose") {
		opts = append(opts, v2ex.WithRequestLogger(&writerLogger{out: cmd.ErrOrStderr()}))
	}

	return v2ex.New(token, opts...), nil
}

// writerLogger is a v2ex.RequestLogger that writes leveled lines to out.
type writerLogger struct {
	out io.Writer
}

func (l *writerLogger) Errorf(format string, v ...any) { l.printf("ERROR", format, v...) }
func (l *writerLogger) Warnf(format string, v ...any)  { l.printf("WARN", format, v...) }
func (l *writerLogger) Debugf(format string, v ...any) { l.printf("DEBUG", format, v...) }

func (l *writerLogger) printf(level, format string, v ...any) {
	_, _ = fmt.Fprintf(l.out, "%s %s\n", level, fmt.Sprintf(format, v...))
}
