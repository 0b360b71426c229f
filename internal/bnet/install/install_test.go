package install

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/errors"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
}

func TestCheckBasePath(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Battle.net.exe", "Battle.net Launcher.exe")

	err := CheckBasePath(dir)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingMarker, errors.KindOf(err))
	assert.Contains(t, err.Error(), "BlizzardError.exe")
	assert.Contains(t, err.Error(), model.RoleBaseInstall)

	touch(t, dir, "BlizzardError.exe", "unrelated.txt")
	assert.NoError(t, CheckBasePath(dir))
}

func TestCheckBasePathMarkerIsDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Battle.net.exe", "Battle.net Launcher.exe")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "BlizzardError.exe"), 0o755))

	err := CheckBasePath(dir)
	assert.Equal(t, errors.KindMissingMarker, errors.KindOf(err))
	assert.Contains(t, err.Error(), "BlizzardError.exe")
}

func TestCheckAppPath(t *testing.T) {
	for _, missing := range model.AppMarkers {
		t.Run(missing, func(t *testing.T) {
			dir := t.TempDir()
			for _, m := range model.AppMarkers {
				if m != missing {
					touch(t, dir, m)
				}
			}
			err := CheckAppPath(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}

	dir := t.TempDir()
	touch(t, dir, model.AppMarkers...)
	touch(t, dir, "Battle.net.mpq.backup")
	assert.NoError(t, CheckAppPath(dir))
}

func TestSelectLatest(t *testing.T) {
	base := t.TempDir()
	for _, d := range []string{"Battle.net.0041", "Battle.net.0123", "Battle.net.00999", "notmatching", "Battle.net.123", "Battle.net.999999", "xBattle.net.9999"} {
		require.NoError(t, os.Mkdir(filepath.Join(base, d), 0o755))
	}
	// a file with a matching name is not an install
	touch(t, base, "Battle.net.9999")

	got, err := SelectLatest(base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Battle.net.0123"), got)
}

func TestSelectLatestFiveDigits(t *testing.T) {
	base := t.TempDir()
	for _, d := range []string{"Battle.net.8554", "Battle.net.90001"} {
		require.NoError(t, os.Mkdir(filepath.Join(base, d), 0o755))
	}
	got, err := SelectLatest(base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Battle.net.90001"), got)
}

func TestSelectLatestNone(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "Cache"), 0o755))

	_, err := SelectLatest(base)
	assert.ErrorIs(t, err, errors.ErrNoAppInstall)

	_, err = SelectLatest(filepath.Join(base, "missing"))
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

type fakeStore struct {
	value string
	ok    bool
}

func (s *fakeStore) ReadString(context.Context, string, string) (string, bool, error) {
	return s.value, s.ok, nil
}

type fakeDialog struct {
	dir     string
	initial string
}

func (d *fakeDialog) ChooseDirectory(_ context.Context, _, initialDir string, _ bool) (string, error) {
	d.initial = initialDir
	return d.dir, nil
}

func (d *fakeDialog) AskYesNo(context.Context, string, string) (bool, error) { return true, nil }

func (d *fakeDialog) ShowInfo(context.Context, string, string) error { return nil }

func newBase(t *testing.T) string {
	t.Helper()
	base := filepath.Join(t.TempDir(), "Battle.net")
	touch(t, base, model.BaseMarkers...)
	return base
}

func iconValue(base string) string {
	return `"` + filepath.Join(base, "Battle.net Launcher.exe") + `",0`
}

func TestLocateRegistryMatch(t *testing.T) {
	base := newBase(t)
	d := &fakeDialog{dir: base}
	l := NewLocator(&fakeStore{value: iconValue(base), ok: true}, d, Config{}, zerolog.Nop())

	got, err := l.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, base, got)
	assert.Equal(t, filepath.ToSlash(base), d.initial)
}

func TestLocateNoRegistryUsesFallback(t *testing.T) {
	base := newBase(t)
	d := &fakeDialog{dir: base}
	l := NewLocator(&fakeStore{}, d, Config{}, zerolog.Nop())

	got, err := l.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, base, got)
	assert.Equal(t, model.DefaultFallbackDir, d.initial)
}

func TestLocateTrailingSlash(t *testing.T) {
	base := newBase(t)
	for _, dir := range []string{base + "/", base + string(filepath.Separator), filepath.Join(base, ".")} {
		t.Run(dir, func(t *testing.T) {
			l := NewLocator(&fakeStore{value: iconValue(base), ok: true}, &fakeDialog{dir: dir}, Config{}, zerolog.Nop())

			got, err := l.Locate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, base, got)
		})
	}
}

func TestLocateMismatch(t *testing.T) {
	base := newBase(t)
	other := newBase(t)
	l := NewLocator(&fakeStore{value: iconValue(base), ok: true}, &fakeDialog{dir: other}, Config{}, zerolog.Nop())

	_, err := l.Locate(context.Background())
	assert.Equal(t, errors.KindPathMismatch, errors.KindOf(err))
}

func TestLocateCanceled(t *testing.T) {
	l := NewLocator(&fakeStore{}, &fakeDialog{}, Config{}, zerolog.Nop())
	_, err := l.Locate(context.Background())
	assert.ErrorIs(t, err, errors.ErrCanceled)
}

func TestLocateRegistryPathMissing(t *testing.T) {
	gone := filepath.Join(t.TempDir(), "gone")
	d := &fakeDialog{dir: gone}
	l := NewLocator(&fakeStore{value: iconValue(gone), ok: true}, d, Config{}, zerolog.Nop())

	_, err := l.Locate(context.Background())
	assert.Equal(t, errors.KindPathNotExist, errors.KindOf(err))
	assert.Empty(t, d.initial, "dialog is never opened")
}

func TestLocateUserPathMissing(t *testing.T) {
	gone := filepath.Join(t.TempDir(), "gone")
	l := NewLocator(&fakeStore{}, &fakeDialog{dir: gone}, Config{}, zerolog.Nop())

	_, err := l.Locate(context.Background())
	assert.Equal(t, errors.KindPathNotExist, errors.KindOf(err))
}

func TestLocateNotBaseInstall(t *testing.T) {
	dir := t.TempDir()
	l := NewLocator(&fakeStore{}, &fakeDialog{dir: dir}, Config{}, zerolog.Nop())

	_, err := l.Locate(context.Background())
	assert.Equal(t, errors.KindMissingMarker, errors.KindOf(err))
}
