package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamtext/streamtext"
)

var textCatCmd = &cobra.Command{
	Use:   "textcat",
	Short: "Relay stdin to stdout through the full text canonicalizer",
	Long: paragraph(fmt.Sprintf(
		"\nRelay stdin to stdout as %s plain text: malformed UTF-8 and "+
			"control codes other than newline and tab become U+FFFD, escape "+
			"sequences and byte-order marks are dropped, and the text is "+
			"normalized to NFC with the Stream-Safe Text Process.", keyword("canonical"),
	)),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runTextCat(cfg)
	},
}

func newOutputTextWriter(cfg Config) (*streamtext.TextWriter, error) {
	sw := streamtext.NewStreamWriter(os.Stdout)
	switch {
	case cfg.BOM:
		return streamtext.NewBOMCompatibilityWriter(sw)
	case cfg.CRLF:
		return streamtext.NewCRLFCompatibilityWriter(sw), nil
	default:
		return streamtext.NewTextWriter(sw), nil
	}
}

func runTextCat(cfg Config) error {
	reader := streamtext.NewTextReader(streamtext.NewUTF8Reader(streamtext.NewReader(os.Stdin)))
	writer, err := newOutputTextWriter(cfg)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	bufSize := cfg.BufferSize
	if bufSize < streamtext.NormalizationBufferSize {
		bufSize = streamtext.NormalizationBufferSize
	}
	buf := make([]byte, bufSize)

	for {
		outcome, err := reader.ReadOutcome(buf)
		if err != nil {
			writer.Abandon()
			return fmt.Errorf("read: %w", err)
		}
		if err := writer.WriteAll(buf[:outcome.Size]); err != nil {
			writer.Abandon()
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
