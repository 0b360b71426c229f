package bnetrebrand

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sjzar/bnetrebrand/internal/bnet/archive"
	"github.com/sjzar/bnetrebrand/internal/bnet/process"
	"github.com/sjzar/bnetrebrand/internal/bnet/registry"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/internal/rebrand"
	"github.com/sjzar/bnetrebrand/internal/rebrand/conf"
	"github.com/sjzar/bnetrebrand/internal/ui"
)

var (
	vp      = viper.New()
	cfg     *conf.Config
	cfgFile string

	// dialog presets
	presetDir      string
	assumeYes      bool
	quiet          bool
	nonInteractive bool

	closeLog func()
)

var rootCmd = &cobra.Command{
	Use:   "bnetrebrand",
	Short: "Rebrand the Blizzard App back to Battle.net",
	Long: `bnetrebrand patches Battle.net.mpq in the latest Battle.net app install
with the files under resources/, turning the "Blizzard App" branding back
into "Battle.net".

Battle.net must be fully closed (including the tray icon). A one-time copy
of the archive is kept as Battle.net.mpq.backup and is never overwritten.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE:              runPatch,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if code := finish(err); code != 0 {
		os.Exit(code)
	}
}

// finish logs err, closes the log file and returns the exit code. cobra skips
// post-run hooks when RunE fails, so the log is closed here on every path.
func finish(err error) int {
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrCanceled):
		log.Info().Msg("Canceled by user")
	default:
		log.Err(err).Str("kind", errors.KindOf(err).String()).Msg("Exiting...")
	}
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	return errors.ExitCode(err)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default bnetrebrand.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.String("tool", "", "MPQ editor executable (default MPQEditor.exe)")
	flags.String("work-dir", "", "directory holding resources/ (default .)")
	flags.Duration("terminate-timeout", 0, "how long to wait for Battle.net to exit (default 2s)")
	flags.StringVarP(&presetDir, "dir", "d", "", "use this base install directory instead of asking")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every question")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not show the finished dialog")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never open a dialog; unanswered questions count as no/cancel")

	for key, name := range map[string]string{
		"debug":             "debug",
		"log_file":          "log-file",
		"tool":              "tool",
		"work_dir":          "work-dir",
		"terminate_timeout": "terminate-timeout",
	} {
		_ = vp.BindPFlag(key, flags.Lookup(name))
	}
}

func initApp(cmd *cobra.Command, _ []string) error {
	c, err := conf.Load(vp, cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	closeLog, err = initLog(cfg)
	if err != nil {
		return err
	}
	log.Debug().Str("command", cmd.Name()).Interface("config", cfg).Msg("config loaded")
	return nil
}

func newDialog() ui.Dialog {
	p := &ui.Preset{Dir: presetDir, AssumeYes: assumeYes, Quiet: quiet}
	if !nonInteractive {
		p.Next = ui.NewTerminal()
	}
	return p
}

func newPipeline() *rebrand.Pipeline {
	return rebrand.New(cfg, rebrand.Deps{
		Lister: process.NewSystemLister(),
		Store:  registry.NewSystemStore(log.Logger),
		Dialog: newDialog(),
		Runner: archive.NewExecRunner(log.Logger),
	}, log.Logger)
}
