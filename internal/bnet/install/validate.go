package install

import (
	"path/filepath"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

// CheckBasePath confirms dir is the top-level Battle.net install.
func CheckBasePath(dir string) error {
	return checkMarkers(dir, model.BaseMarkers, model.RoleBaseInstall)
}

// CheckAppPath confirms dir is a versioned app install holding the archive.
func CheckAppPath(dir string) error {
	return checkMarkers(dir, model.AppMarkers, model.RoleAppInstall)
}

func checkMarkers(dir string, markers []string, role string) error {
	for _, name := range markers {
		if ok, err := util.IsFile(filepath.Join(dir, name)); err != nil || !ok {
			return errors.MissingMarker(name, filepath.ToSlash(dir), role)
		}
	}
	return nil
}
