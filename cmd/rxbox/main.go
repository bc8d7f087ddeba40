// rxbox runs the reactive core end to end.
//
// Usage:
//
//	rxbox [--json] demo [--items N] [--fail] [--pool-size N] [--metrics-addr ADDR]
//
// Logging is configured with LOG_LEVEL and LOG_FORMAT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ib-77/rxbox/internal/cli"
	"github.com/ib-77/rxbox/internal/telemetry"
)

// version is set through ldflags at build time.
var version = "dev"

func main() {
	var jsonOutput bool

	logger := telemetry.SetupLogger()

	rootCmd := &cobra.Command{
		Use:           "rxbox",
		Short:         "rxbox: push-based reactive streams with pluggable schedulers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func(cmd *cobra.Command) *cli.Output {
		return cli.NewOutput(cmd.OutOrStdout(), jsonOutput)
	}

	rootCmd.AddCommand(cli.NewDemoCmd(outputFn))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(telemetry.WithLogger(ctx, logger)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
