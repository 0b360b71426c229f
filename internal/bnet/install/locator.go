package install

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/bnet/registry"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/internal/ui"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

const chooseTitle = "Please select the install location of Battle.net."

type Config struct {
	RegistryKey   string
	RegistryValue string
	FallbackDir   string
}

// Locator finds the base install directory from the registry hint and a
// confirmation by the user.
type Locator struct {
	store  registry.Store
	dialog ui.Dialog
	conf   Config
	log    zerolog.Logger
}

func NewLocator(store registry.Store, dialog ui.Dialog, conf Config, logger zerolog.Logger) *Locator {
	if conf.RegistryKey == "" {
		conf.RegistryKey = model.RegistryKeyPath
	}
	if conf.RegistryValue == "" {
		conf.RegistryValue = model.RegistryValueName
	}
	if conf.FallbackDir == "" {
		conf.FallbackDir = model.DefaultFallbackDir
	}
	return &Locator{
		store:  store,
		dialog: dialog,
		conf:   conf,
		log:    logger.With().Str("component", "install").Logger(),
	}
}

// LookupSystemPath derives the base directory from the registry icon entry.
// found is false when there is no registry entry at all.
func (l *Locator) LookupSystemPath(ctx context.Context) (dir string, found bool, err error) {
	value, ok, err := l.store.ReadString(ctx, l.conf.RegistryKey, l.conf.RegistryValue)
	if err != nil {
		return "", false, err
	}
	if !ok {
		l.log.Info().Msg("could not find Battle.net registry entry")
		return "", false, nil
	}
	l.log.Debug().Str("value_data", value).Msg("registry value")
	dir = filepath.Dir(registry.ParseIconPath(value))
	if !util.Exists(dir) {
		return "", false, errors.PathNotExist(filepath.ToSlash(dir))
	}
	return dir, true, nil
}

// ConfirmWithUser asks the user to pick the install directory, starting at initialDir.
func (l *Locator) ConfirmWithUser(ctx context.Context, initialDir string) (string, error) {
	dir, err := l.dialog.ChooseDirectory(ctx, chooseTitle, initialDir, true)
	if err != nil {
		return "", err
	}
	l.log.Debug().Str("user_dir", dir).Msg("directory chosen")
	if dir == "" {
		return "", errors.ErrCanceled
	}
	if !util.Exists(dir) {
		return "", errors.PathNotExist(filepath.ToSlash(dir))
	}
	return dir, nil
}

// Locate returns the verified base install directory.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	regDir, found, err := l.LookupSystemPath(ctx)
	if err != nil {
		return "", err
	}

	initial := l.conf.FallbackDir
	if found {
		initial = filepath.ToSlash(regDir)
	}
	userDir, err := l.ConfirmWithUser(ctx, initial)
	if err != nil {
		return "", err
	}

	userDir = filepath.Clean(userDir)
	if found && filepath.Clean(regDir) != userDir {
		return "", errors.PathMismatch(regDir, userDir)
	}

	if err := CheckBasePath(userDir); err != nil {
		return "", err
	}
	return userDir, nil
}
