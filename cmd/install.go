package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/manager"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "install [name]",
		Short: "Install one package with its dependencies or select from the manifest",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadManifest()
			if err != nil {
				return err
			}
			m := manager.New(cfg)
			if dryRun {
				var plan []string
				if len(args) == 1 {
					plan, err = m.Resolve(args[0])
				} else {
					plan, err = m.Order()
				}
				if err != nil {
					return err
				}
				if len(plan) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to install")
					return nil
				}
				for _, line := range m.DescribePlan(plan) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}
			if len(args) == 1 {
				return m.Install(args[0], manager.NewShellRunner())
			}
			return console.NewConsoleUI(m).Install()
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print planned steps without executing")
	rootCmd.AddCommand(cmd)
}
