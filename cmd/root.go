/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/allbin/ttlpulse"
	"github.com/allbin/ttlpulse/internal/tui/styles"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X github.com/allbin/ttlpulse/cmd.version=..."
var version = "dev"

// pulseSender is the part of ttlpulse.Sender the CLI uses
type pulseSender interface {
	SendPulse(device string, baudRate uint32) error
}

// app holds the collaborators a command run needs
type app struct {
	directory ttlpulse.Directory
	sender    pulseSender
	logger    *slog.Logger
	logLevel  *slog.LevelVar
}

func newApp() *app {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &app{
		directory: ttlpulse.NewSystemDirectory(logger),
		sender: ttlpulse.NewSender(
			ttlpulse.WithLogger(logger),
			ttlpulse.WithLineSettings(
				ttlpulse.WithDataBits(8),
				ttlpulse.WithStopBits(1),
				ttlpulse.WithParity(ttlpulse.ParityNone),
			),
		),
		logger:   logger,
		logLevel: level,
	}
}

// silentError marks an error that has already been explained to the user
type silentError struct {
	err error
}

func (e silentError) Error() string { return e.err.Error() }
func (e silentError) Unwrap() error { return e.err }

// newRootCmd builds the ttlpulse command around the given collaborators
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ttlpulse",
		Short: "Send a TTL pulse to a serial port",
		Long: `Send a TTL pulse by writing a single 0xFF byte to a serial (COM) port.

The device must be present in the current port listing before anything is
written. Run with --list to see the available ports; device IDs are
highlighted in the listing.

Example usage:
  ttlpulse --list
  ttlpulse --list --table
  ttlpulse --device /dev/ttyUSB0
  ttlpulse --device COM3 --baudrate 115200`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrArgument, err)
			}
			return nil
		},
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose && a.logLevel != nil {
				a.logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return ErrNoArguments
			}

			device, _ := cmd.Flags().GetString("device")
			list, _ := cmd.Flags().GetBool("list")
			baudRate, _ := cmd.Flags().GetUint32("baudrate")
			tableFormat, _ := cmd.Flags().GetBool("table")

			intent, err := Resolve(Args{
				Device:    device,
				DeviceSet: cmd.Flags().Changed("device"),
				List:      list,
				BaudRate:  baudRate,
			})
			if err != nil {
				return err
			}
			a.log().Debug("resolved invocation",
				"mode", intent.Mode,
				"device", intent.Device,
				"baudrate", intent.BaudRate)

			out := cmd.OutOrStdout()
			switch intent.Mode {
			case ModeSendPulse:
				return a.runSend(out, intent)
			default:
				return a.runList(out, tableFormat)
			}
		},
	}

	rootCmd.Flags().StringP("device", "d", "", "the COM device to send the serial request to, case-sensitive")
	rootCmd.Flags().Uint32P("baudrate", "b", ttlpulse.DefaultBaudRate, "the baudrate to send the serial request at")
	rootCmd.Flags().BoolP("list", "l", false, "list all available COM ports and exit (device IDs are highlighted)")
	rootCmd.Flags().BoolP("table", "t", false, "display the port list in a table")
	rootCmd.Flags().BoolP("verbose", "v", false, "log diagnostics to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrArgument, err)
	})

	return rootCmd
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return execute(newRootCmd(newApp()))
}

func execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		return 1
	}
	return 0
}

// reportError explains a failed run on stderr. Argument errors are followed by
// the usage text; a bare invocation gets the full help.
func reportError(rootCmd *cobra.Command, err error) {
	var silent silentError
	if errors.As(err, &silent) {
		return
	}

	w := rootCmd.ErrOrStderr()
	if errors.Is(err, ErrNoArguments) {
		rootCmd.SetOut(w)
		_ = rootCmd.Help()
		return
	}

	fmt.Fprintf(w, "%s %v\n", styles.ErrorStyle.Render("✗"), err)
	if errors.Is(err, ErrArgument) {
		fmt.Fprintln(w)
		fmt.Fprint(w, rootCmd.UsageString())
	}
}
