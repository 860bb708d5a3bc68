package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/streamtext/streamtext"
)

var benchCmd = &cobra.Command{
	Use:   "bench <file>",
	Short: "Compare ReadToEnd against io.ReadAll on one file",
	Long: paragraph(fmt.Sprintf(
		"\nRead the given file twice, once through %s and once through "+
			"io.ReadAll, and report how long each took.", keyword("ReadToEnd"),
	)),
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBench(args[0])
	},
}

func runBench(path string) error {
	viaReadToEnd, d1, err := benchReadToEnd(path)
	if err != nil {
		return fmt.Errorf("ReadToEnd: %w", err)
	}
	viaReadAll, d2, err := benchReadAll(path)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}
	if viaReadToEnd != viaReadAll {
		return fmt.Errorf("byte counts disagree: ReadToEnd read %d, io.ReadAll read %d", viaReadToEnd, viaReadAll)
	}

	fmt.Printf("%-12s %8d bytes in %v\n", "ReadToEnd", viaReadToEnd, d1)
	fmt.Printf("%-12s %8d bytes in %v\n", "io.ReadAll", viaReadAll, d2)
	return nil
}

func benchReadToEnd(path string) (int, time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	r := streamtext.NewReader(f)
	var buf []byte
	start := time.Now()
	n, err := r.ReadToEnd(&buf)
	elapsed := time.Since(start)
	if err != nil {
		return 0, 0, err
	}
	return n, elapsed, nil
}

func benchReadAll(path string) (int, time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	start := time.Now()
	buf, err := io.ReadAll(f)
	elapsed := time.Since(start)
	if err != nil {
		return 0, 0, err
	}
	return len(buf), elapsed, nil
}
