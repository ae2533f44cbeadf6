package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/manager"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a package nothing else depends on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadManifest()
			if err != nil {
				return err
			}
			ui := console.NewConsoleUI(manager.New(cfg))
			return ui.RunRemoveImperative(args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes and remove without prompting")
	rootCmd.AddCommand(cmd)
}
