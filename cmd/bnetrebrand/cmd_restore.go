package bnetrebrand

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Put Battle.net.mpq.backup back in place of Battle.net.mpq",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newPipeline().Restore(cmd.Context())
	},
}
