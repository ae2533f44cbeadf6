package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/graph"
	"github.com/gopak/depsort/internal/logging"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	var fromManifest bool
	var asTable bool
	cmd := &cobra.Command{
		Use:   "order [\"package: dependency\"...]",
		Short: "Print the install order; reads declarations from stdin when none are given",
		Example: `  depsort order "KittenService: " "CamelCaser: KittenService"
  printf 'Leetmeme: Cyberportal\nCyberportal: Ice\n' | depsort order
  depsort order --manifest --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			decls, err := readDeclarations(cmd.InOrStdin(), args, fromManifest)
			if err != nil {
				return err
			}
			order, err := graph.Order(decls)
			if err != nil {
				return err
			}
			logging.Debug("install order: " + strings.Join(order, " -> "))
			if asTable {
				fmt.Fprint(cmd.OutOrStdout(), console.RenderOrder(order, graph.BuildGraph(decls)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, graph.OrderSeparator))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromManifest, "manifest", false, "read packages from the manifest directory instead of arguments")
	cmd.Flags().BoolVar(&asTable, "table", false, "print a numbered table instead of a comma separated line")
	rootCmd.AddCommand(cmd)
}

// readDeclarations takes declarations from the manifest, the arguments or,
// when there are no arguments, one per line from in.
func readDeclarations(in io.Reader, args []string, fromManifest bool) ([]graph.Declaration, error) {
	if fromManifest {
		m, err := loadManifest()
		if err != nil {
			return nil, err
		}
		return m.Declarations(), nil
	}
	if len(args) > 0 {
		return graph.ParseDeclarations(args)
	}
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return graph.ParseDeclarations(lines)
}
