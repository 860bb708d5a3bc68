package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamtext/streamtext"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Relay stdin to stdout through the raw byte adapter",
	Long: paragraph(fmt.Sprintf(
		"\nRelay stdin to stdout %s: no UTF-8 validation, no normalization, "+
			"just the read/flush/status loop.", keyword("byte-for-byte"),
	)),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runCat(cfg)
	},
}

func runCat(cfg Config) error {
	reader := streamtext.NewReader(os.Stdin)
	writer := streamtext.NewStreamWriter(os.Stdout)
	buf := make([]byte, cfg.BufferSize)

	for {
		outcome, err := reader.ReadOutcome(buf)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if err := writer.WriteAll(buf[:outcome.Size]); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if err := writer.Flush(outcome.Status); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		if outcome.Status.IsEnd() {
			return nil
		}
	}
}
