package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/manager"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manifest packages with their dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadManifest()
			if err != nil {
				return err
			}
			return console.NewConsoleUI(manager.New(cfg)).RunListImperative()
		},
	}
	rootCmd.AddCommand(cmd)
}
