package cmd

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/logging"
)

var cfgFile string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "depsort",
	Short:         "Compute package install order from dependency declarations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the manifest directory (default dir: ~/.config/depsort); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps and commands")
	rootCmd.Version = version
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	logging.Init(logging.LogDir())
	logging.SetVerbose(verbose)
}

// configDir resolves the manifest directory, following SUDO_USER so that
// sudo runs read the invoking user's manifests.
func configDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "depsort")
}

func loadManifest() (config.Manifest, error) {
	dir := configDir()
	logging.Debug("loading manifests from " + dir)
	m, err := config.LoadDir(dir)
	if err != nil {
		return config.Manifest{}, err
	}
	if err := config.ValidateAgainstSchema(m); err != nil {
		return config.Manifest{}, err
	}
	return m, nil
}
