package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"
)

// Config holds the settings streamcat's subcommands read at startup. It is
// populated from the environment first, then overlaid with flags and
// config-file values through viper; a flag set explicitly wins.
type Config struct {
	BufferSize int    `env:"STREAMCAT_BUFFER_SIZE"`
	CRLF       bool   `env:"STREAMCAT_CRLF"`
	BOM        bool   `env:"STREAMCAT_BOM"`
	Debug      bool   `env:"STREAMCAT_DEBUG"`
	LogFile    string `env:"STREAMCAT_LOGFILE"`
}

const defaultConfigYAML = `# bytes per read/write call for the cat subcommands
buffer-size: 4096
# expand bare LF to CRLF on output (textcat only)
crlf: false
# write a leading byte-order mark to the output (textcat only)
bom: false
# write adapter internals to the debug log
debug: false
`

// expandPath resolves a leading ~ in a config path to the user's home
// directory.
func expandPath(p string) string {
	s, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return s
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "streamcat")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not resolve configuration directory: %v\n", err)
		return
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "streamcat")}, dirs...)
	}

	for _, d := range dirs {
		viper.AddConfigPath(d)
	}

	viper.SetConfigName("streamcat")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("streamcat")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not parse configuration file: %v\n", err)
		}
	}

	if viper.ConfigFileUsed() == "" && len(dirs) > 0 {
		configFile = filepath.Join(dirs[0], "streamcat.yml")
	}
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
	}
	configFile = expandPath(configFile)

	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%q is not a supported configuration type: use .yaml or .yml", ext)
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable to create config directory: %w", err)
		}
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer f.Close()
		if _, err := f.WriteString(defaultConfigYAML); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
