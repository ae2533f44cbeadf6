package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/graph"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	var fromManifest bool
	cmd := &cobra.Command{
		Use:   "indegrees [\"package: dependency\"...]",
		Short: "Show how many packages depend on each package",
		RunE: func(cmd *cobra.Command, args []string) error {
			decls, err := readDeclarations(cmd.InOrStdin(), args, fromManifest)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderInDegrees(graph.InDegrees(graph.BuildGraph(decls))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromManifest, "manifest", false, "read packages from the manifest directory instead of arguments")
	rootCmd.AddCommand(cmd)
}
