package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tree.json and graph.json, skipping files whose inputs did not change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.OutDir, _ = cmd.Flags().GetString("out-dir")
			opts.Force, _ = cmd.Flags().GetBool("force")
			return c.app.Export(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("out-dir", "o", "", "Directory to write the exported files to")
	cmd.Flags().BoolP("force", "f", false, "Rewrite every file even when its inputs did not change")
	return cmd
}
