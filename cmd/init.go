package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/assets"
	"github.com/gopak/depsort/internal/logging"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example manifest to the manifest directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir()
			written, err := assets.WriteDefaultManifestIfMissing(dir)
			if err != nil {
				return err
			}
			if written {
				logging.Success("wrote " + dir + "/" + assets.DefaultManifestName)
			} else {
				logging.Gray("manifest already present in " + dir)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
