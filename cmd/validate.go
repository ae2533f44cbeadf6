package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/logging"
	"github.com/gopak/depsort/internal/manager"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the merged manifest against the JSON Schema and check for cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest()
		if err != nil {
			return err
		}
		if _, err := manager.New(m).Order(); err != nil {
			return err
		}
		logging.Info(fmt.Sprintf("Manifest is valid (%d packages)", len(m.Packages)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
