package install

import (
	"os"
	"path/filepath"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

// SelectLatest returns the versioned app install under baseDir with the
// greatest name. Names are compared as strings, not as numbers, so
// Battle.net.0123 wins over Battle.net.00999.
func SelectLatest(baseDir string) (string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return "", errors.FileOpFailed(err, "list", baseDir)
	}
	latest := ""
	for _, e := range entries {
		if !isDir(baseDir, e) || !model.AppDirPattern.MatchString(e.Name()) {
			continue
		}
		if e.Name() > latest {
			latest = e.Name()
		}
	}
	if latest == "" {
		return "", errors.NoAppInstall(baseDir)
	}
	return filepath.Join(baseDir, latest), nil
}

// isDir follows symlinks, matching what a directory listing shows to a user.
func isDir(baseDir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	ok, err := util.IsDir(filepath.Join(baseDir, e.Name()))
	return err == nil && ok
}
