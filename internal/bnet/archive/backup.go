package archive

import (
	"path/filepath"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

func ArchivePath(appDir string) string {
	return filepath.Join(appDir, model.ArchiveFileName)
}

func BackupPath(appDir string) string {
	return ArchivePath(appDir) + model.BackupSuffix
}

// EnsureBackup copies the archive next to itself unless a backup already
// exists. An existing backup is never touched.
func EnsureBackup(appDir string) (backup string, created bool, err error) {
	archive := ArchivePath(appDir)
	backup = BackupPath(appDir)
	if util.Exists(backup) {
		return backup, false, nil
	}
	if err := util.CopyFile(archive, backup); err != nil {
		return "", false, errors.FileOpFailed(err, "back up", archive)
	}
	return backup, true, nil
}

// Restore puts the backup back in place of the archive. The backup is kept.
func Restore(appDir string) error {
	backup := BackupPath(appDir)
	if !util.Exists(backup) {
		return errors.NoBackup(filepath.ToSlash(backup))
	}
	if err := util.CopyFile(backup, ArchivePath(appDir)); err != nil {
		return errors.FileOpFailed(err, "restore", ArchivePath(appDir))
	}
	return nil
}
