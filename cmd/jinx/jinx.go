package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jinx/app"
	"jinx/config"
	"jinx/device"
	"jinx/device/tcell"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	cmd := newRootCmd(tcell.NewDevice)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "jinx: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(open device.Opener) *cobra.Command {
	cfg, envErr := config.FromEnv()

	cmd := &cobra.Command{
		Use:           "jinx",
		Short:         "Console application with a display area and a command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return envErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			closeLog, err := setupLog(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return app.Run(ctx, open, newEcho(), cfg.Loop())
		},
	}

	cmd.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Tick interval in polling mode (env "+config.EnvTick+")")
	cmd.Flags().BoolVar(&cfg.Blocking, "blocking", cfg.Blocking, "Tick only when a key is pressed (env "+config.EnvBlocking+")")
	cmd.Flags().StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append the debug log to this file (env "+config.EnvLog+")")

	cmd.AddCommand(newPaletteCmd())
	return cmd
}

// setupLog sends the log to path, or drops it when path is empty: the screen belongs to the console.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		file.Close()
	}, nil
}
