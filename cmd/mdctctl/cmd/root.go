package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-mdct-codec/logging"
	"github.com/cocosip/go-mdct-codec/mdct"
)

// NewRoot creates the mdctctl root command.
func NewRoot(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdctctl",
		Short: "a CLI to exercise the multi-DCT experimental image codec",
		Long:  "mdctctl compresses and reconstructs images through the four block transforms of the multi-DCT codec and reports quality metrics.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}

			out := os.Stdout
			logger := logging.Logger(out, false, level)
			if logFile != "" {
				logger = logging.Logger(logging.FileWriter(logFile), false, level)
			}
			slog.SetDefault(logger)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(
		NewVersionCmd(ctx),
		NewCompareCmd(ctx),
		NewRoundtripCmd(ctx),
	)

	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "Write logs to a rotated file instead of stdout")

	return cmd
}

// NewVersionCmd reports the codec library version.
func NewVersionCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "codec library version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(mdct.Version())
		},
	}
}
