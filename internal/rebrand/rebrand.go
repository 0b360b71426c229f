package rebrand

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/sjzar/bnetrebrand/internal/bnet/archive"
	"github.com/sjzar/bnetrebrand/internal/bnet/install"
	"github.com/sjzar/bnetrebrand/internal/bnet/process"
	"github.com/sjzar/bnetrebrand/internal/bnet/registry"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/internal/rebrand/conf"
	"github.com/sjzar/bnetrebrand/internal/ui"
)

// Deps are the OS capabilities the pipeline works through.
type Deps struct {
	Lister process.Lister
	Store  registry.Store
	Dialog ui.Dialog
	Runner archive.Runner
}

// Pipeline runs the rebrand stages in order. Each stage must succeed before
// the next one starts.
type Pipeline struct {
	conf    *conf.Config
	dialog  ui.Dialog
	guard   *process.Guard
	locator *install.Locator
	patcher *archive.Patcher
	sleep   func(ctx context.Context, d time.Duration) error
	log     zerolog.Logger
}

func New(c *conf.Config, deps Deps, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		conf:   c,
		dialog: deps.Dialog,
		guard:  process.NewGuard(deps.Lister, c.TerminateTimeout, logger),
		locator: install.NewLocator(deps.Store, deps.Dialog, install.Config{
			RegistryKey:   c.Registry.Key,
			RegistryValue: c.Registry.Value,
			FallbackDir:   c.FallbackDir,
		}, logger),
		patcher: archive.NewPatcher(deps.Runner, c.Tool, c.WorkDir, logger),
		sleep:   sleep,
		log:     logger.With().Str("component", "rebrand").Logger(),
	}
}

// Run patches Battle.net.mpq in the latest app install. Declining the final
// confirmation is not an error.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log.Debug().Msg("program start")

	appDir, err := p.prepare(ctx)
	if err != nil {
		return err
	}

	backup, created, err := archive.EnsureBackup(appDir)
	if err != nil {
		return err
	}
	if created {
		p.log.Info().Str("backup", filepath.ToSlash(backup)).Msg("backup created")
	} else {
		p.log.Info().Str("backup", filepath.ToSlash(backup)).Msg("backup already exists, keeping it")
	}

	archivePath := archive.ArchivePath(appDir)
	ok, err := p.dialog.AskYesNo(ctx, "Confirm Patch", "Patch Archive: "+archivePath+"?")
	if err != nil {
		return err
	}
	if !ok {
		p.log.Info().Msg("patch declined")
		return nil
	}

	if err := p.patcher.Patch(ctx, appDir); err != nil {
		return err
	}
	p.log.Info().Str("archive", filepath.ToSlash(archivePath)).Msg("archive patched")

	if err := p.dialog.ShowInfo(ctx, "Finished", "The Blizzard App should now be Battle.net again."); err != nil {
		return err
	}
	p.log.Debug().Msg("program finish")
	return nil
}

// Restore copies Battle.net.mpq.backup over Battle.net.mpq in the latest app install.
func (p *Pipeline) Restore(ctx context.Context) error {
	appDir, err := p.prepare(ctx)
	if err != nil {
		return err
	}

	archivePath := archive.ArchivePath(appDir)
	ok, err := p.dialog.AskYesNo(ctx, "Confirm Restore", "Restore Archive: "+archivePath+" from backup?")
	if err != nil {
		return err
	}
	if !ok {
		p.log.Info().Msg("restore declined")
		return nil
	}
	if err := archive.Restore(appDir); err != nil {
		return err
	}
	p.log.Info().Str("archive", filepath.ToSlash(archivePath)).Msg("archive restored from backup")
	return p.dialog.ShowInfo(ctx, "Finished", "Battle.net.mpq has been restored from its backup.")
}

// prepare closes Battle.net and returns the validated latest app install.
func (p *Pipeline) prepare(ctx context.Context) (string, error) {
	if err := p.ensureClosed(ctx); err != nil {
		return "", err
	}

	installDir, err := p.locator.Locate(ctx)
	if err != nil {
		return "", err
	}
	p.log.Info().Str("install_dir", filepath.ToSlash(installDir)).Msg("base install confirmed")

	appDir, err := install.SelectLatest(installDir)
	if err != nil {
		return "", err
	}
	if err := install.CheckAppPath(appDir); err != nil {
		return "", err
	}
	p.log.Info().Str("app_dir", filepath.ToSlash(appDir)).Msg("latest app install")
	return appDir, nil
}

func (p *Pipeline) ensureClosed(ctx context.Context) error {
	closed, err := p.guard.IsClosed(ctx)
	if err != nil {
		return errors.Wrap(err, "list Battle.net processes")
	}
	if closed {
		return nil
	}

	ok, err := p.dialog.AskYesNo(ctx, "Close Battle.net", "Battle.net is still running, do you want to force close it?")
	if err != nil {
		return err
	}
	if ok {
		if err := p.guard.Terminate(ctx); err != nil {
			return errors.Wrap(err, "terminate Battle.net")
		}
		if err := p.sleep(ctx, p.conf.SettleDelay); err != nil {
			return err
		}
	}

	closed, err = p.guard.IsClosed(ctx)
	if err != nil {
		return errors.Wrap(err, "list Battle.net processes")
	}
	if !closed {
		return errors.ErrTargetRunning
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
