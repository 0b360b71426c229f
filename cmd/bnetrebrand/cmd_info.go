package bnetrebrand

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/rebrand"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what a patch run would act on, without changing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		nonInteractive = true
		r, err := newPipeline().Info(cmd.Context(), presetDir)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), r)
		return nil
	},
}

func printReport(w io.Writer, r *rebrand.Report) {
	fmt.Fprintf(w, "Registry dir:  %s\n", orNone(r.RegistryDir))
	fmt.Fprintf(w, "Base install:  %s\n", orNone(r.BaseDir))
	if r.BaseErr != nil {
		fmt.Fprintf(w, "  ! %v\n", r.BaseErr)
	}
	fmt.Fprintf(w, "App install:   %s\n", orNone(r.AppDir))
	if r.AppErr != nil {
		fmt.Fprintf(w, "  ! %v\n", r.AppErr)
	}
	fmt.Fprintf(w, "Archive size:  %s\n", size(r.ArchiveSize))
	fmt.Fprintf(w, "Backup size:   %s\n", size(r.BackupSize))
	fmt.Fprintln(w, "Processes:")
	for _, name := range model.ProcessNames {
		fmt.Fprintf(w, "  %-24s %s\n", name, r.Status[name])
	}
	for _, p := range r.Processes {
		fmt.Fprintf(w, "  pid %-8d %s\n", p.PID, filepath.ToSlash(p.ExePath))
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return filepath.ToSlash(s)
}

func size(n int64) string {
	if n < 0 {
		return "(missing)"
	}
	return fmt.Sprintf("%d bytes", n)
}
