package bnetrebrand

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(patchCmd)
}

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Patch Battle.net.mpq (default command)",
	Args:  cobra.NoArgs,
	RunE:  runPatch,
}

func runPatch(cmd *cobra.Command, _ []string) error {
	return newPipeline().Run(cmd.Context())
}
