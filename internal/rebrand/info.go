package rebrand

import (
	"context"

	"github.com/sjzar/bnetrebrand/internal/bnet/archive"
	"github.com/sjzar/bnetrebrand/internal/bnet/install"
	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

// Report describes what a patch run would act on. Sizes are -1 when the file is missing.
type Report struct {
	RegistryDir string
	BaseDir     string
	BaseErr     error
	AppDir      string
	AppErr      error
	ArchiveSize int64
	BackupSize  int64
	Status      map[string]string
	Processes   []*model.Process
}

// Info inspects the install without touching it or asking anything. baseDir
// overrides the registry-derived base directory when set.
func (p *Pipeline) Info(ctx context.Context, baseDir string) (*Report, error) {
	r := &Report{
		ArchiveSize: -1,
		BackupSize:  -1,
		Status:      make(map[string]string, len(model.ProcessNames)),
	}

	procs, err := p.guard.Running(ctx)
	if err != nil {
		return nil, err
	}
	r.Processes = procs
	for _, name := range model.ProcessNames {
		r.Status[name] = model.StatusOffline
	}
	for _, proc := range procs {
		r.Status[proc.Name] = proc.Status
	}

	regDir, found, err := p.locator.LookupSystemPath(ctx)
	if err != nil {
		r.BaseErr = err
	} else if found {
		r.RegistryDir = regDir
	}

	r.BaseDir = baseDir
	if r.BaseDir == "" {
		r.BaseDir = r.RegistryDir
	}
	if r.BaseDir == "" {
		return r, nil
	}
	if err := install.CheckBasePath(r.BaseDir); err != nil {
		r.BaseErr = err
		return r, nil
	}

	appDir, err := install.SelectLatest(r.BaseDir)
	if err != nil {
		r.AppErr = err
		return r, nil
	}
	r.AppDir = appDir
	if err := install.CheckAppPath(appDir); err != nil {
		r.AppErr = err
	}
	if size, err := util.FileSize(archive.ArchivePath(appDir)); err == nil {
		r.ArchiveSize = size
	}
	if size, err := util.FileSize(archive.BackupPath(appDir)); err == nil {
		r.BackupSize = size
	}
	return r, nil
}
