// Package cli implements the levelup command-line interface: an HTTP routing server and
// one-shot route and level queries over an OSM extract.
package cli

import (
	"context"
	"fmt"

	"github.com/lockcole/OpenLevelUp-sub000/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the values printed by --version. main injects them through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type loggerKey struct{}

func withLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func loggerFromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "levelup",
		Short:        "Indoor multi-level pedestrian routing over OpenStreetMap data",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			log, err := logger.NewWithLevel(level)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			cmd.SetContext(withLogger(cmd.Context(), log))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("levelup %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newLevelsCmd())
	return root
}

// Execute runs the command tree until it returns or ctx is canceled.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
