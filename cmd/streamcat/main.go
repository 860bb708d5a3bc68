// Package main provides the entry point for the streamcat CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExitError represents an error that should cause the program to exit with
// a specific code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

const (
	// ExitCodeSIGINT is the signal offset for SIGINT (Ctrl+C).
	ExitCodeSIGINT = 128 + 2
	// ExitCodeSIGTERM is the signal offset for SIGTERM.
	ExitCodeSIGTERM = 128 + 15
)

var (
	// Version as provided by goreleaser.
	Version = ""

	configFile string
	bufferSize int
	crlf       bool
	bom        bool
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "streamcat",
		Short: "Relay stdin to stdout through the byte/UTF-8/text adapters",
		Long: paragraph(fmt.Sprintf(
			"\nRelay stdin to stdout through the %s adapters, one byte, rune or "+
				"normalized character at a time.", keyword("streamtext"),
		)),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			closer, err := setupLog()
			if err != nil {
				return err
			}
			logCloser = closer
			return nil
		},
	}

	// logCloser is set by PersistentPreRunE once flags are parsed, since
	// the debug flag's value isn't known until then.
	logCloser func() error
)

// loadConfig merges the env.ParseAs[Config] baseline (environment
// variables only) with any flags the caller actually set: viper covers
// flags/config-file/env, caarlos0/env covers the plain
// environment-variable struct, and flag values win when explicitly set.
func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error parsing environment config: %w", err)
	}

	if cfg.BufferSize == 0 {
		cfg.BufferSize = viper.GetInt("buffer-size")
	}
	if cmd.Flags().Changed("buffer-size") {
		cfg.BufferSize = viper.GetInt("buffer-size")
	}
	if cmd.Flags().Changed("crlf") || viper.GetBool("crlf") {
		cfg.CRLF = viper.GetBool("crlf")
	}
	if cmd.Flags().Changed("bom") || viper.GetBool("bom") {
		cfg.BOM = viper.GetBool("bom")
	}
	if cmd.Flags().Changed("debug") || viper.GetBool("debug") {
		cfg.Debug = viper.GetBool("debug")
	}

	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	return cfg, nil
}

func main() {
	var sig os.Signal
	var err error

	notify := make(chan os.Signal, 1)
	signal.Notify(notify, syscall.SIGTERM, syscall.SIGINT)

	done := make(chan struct{})
	go func() {
		select {
		case s := <-notify:
			sig = s
		case <-done:
		}
	}()

	defer func() {
		signal.Stop(notify)
		close(done)

		if sig != nil && err == nil {
			switch sig {
			case syscall.SIGINT:
				err = &ExitError{Code: ExitCodeSIGINT, Err: errors.New("interrupted")}
			case syscall.SIGTERM:
				err = &ExitError{Code: ExitCodeSIGTERM, Err: errors.New("terminated")}
			}
		}

		if err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.Code)
			}
			os.Exit(1)
		}
	}()

	err = rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser()
	}
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default resolved via app-paths)")
	rootCmd.PersistentFlags().IntVar(&bufferSize, "buffer-size", 4096, "bytes per read/write call")
	rootCmd.PersistentFlags().BoolVar(&crlf, "crlf", false, "expand bare LF to CRLF on output (textcat only)")
	rootCmd.PersistentFlags().BoolVar(&bom, "bom", false, "accept and strip a leading byte-order mark (textcat only)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write adapter internals to the debug log")

	_ = viper.BindPFlag("buffer-size", rootCmd.PersistentFlags().Lookup("buffer-size"))
	_ = viper.BindPFlag("crlf", rootCmd.PersistentFlags().Lookup("crlf"))
	_ = viper.BindPFlag("bom", rootCmd.PersistentFlags().Lookup("bom"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	viper.SetDefault("buffer-size", 4096)

	rootCmd.AddCommand(catCmd, utf8CatCmd, textCatCmd, benchCmd, configCmd)
}
