package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Edit the streamcat config file",
	Long:    paragraph(fmt.Sprintf("\n%s the streamcat config file. $EDITOR decides which editor runs. If the config file doesn't exist, it is created first.", keyword("Edit"))),
	Example: paragraph("streamcat config\nstreamcat config --config path/to/config.yml"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}
		c := exec.Command(editor, configFile)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run editor: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}
