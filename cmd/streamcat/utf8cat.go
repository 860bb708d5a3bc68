package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamtext/streamtext"
)

var utf8CatCmd = &cobra.Command{
	Use:   "utf8cat",
	Short: "Relay stdin to stdout through the UTF-8 validating adapter",
	Long: paragraph(fmt.Sprintf(
		"\nRelay stdin to stdout as valid UTF-8, %s each malformed "+
			"sequence with U+FFFD.", keyword("replacing"),
	)),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runUTF8Cat(cfg)
	},
}

func runUTF8Cat(cfg Config) error {
	reader := streamtext.NewUTF8Reader(streamtext.NewReader(os.Stdin))
	writer := streamtext.NewUTF8Writer(streamtext.NewStreamWriter(os.Stdout))
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
