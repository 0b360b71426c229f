package archive

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/pkg/util"
)

const DefaultTool = "MPQEditor.exe"

// Patcher adds the resources/ tree to Battle.net.mpq with an external MPQ
// editor (http://www.zezula.net/en/mpq/download.html).
type Patcher struct {
	runner  Runner
	tool    string
	workDir string
	log     zerolog.Logger
}

// NewPatcher runs tool from workDir, which must contain the resources/ directory.
func NewPatcher(runner Runner, tool, workDir string, logger zerolog.Logger) *Patcher {
	if tool == "" {
		tool = DefaultTool
	}
	return &Patcher{
		runner:  runner,
		tool:    tool,
		workDir: workDir,
		log:     logger.With().Str("component", "archive").Logger(),
	}
}

// Args is the fixed argument list for adding resources/* into archive recursively.
func Args(archive string) []string {
	return []string{"add", filepath.ToSlash(archive), "resources/*", "resources", "/r"}
}

// Patch runs the tool and fails with ErrNoChange when the archive size did
// not move, which is what happens when Battle.net still holds the file.
func (p *Patcher) Patch(ctx context.Context, appDir string) error {
	archive := ArchivePath(appDir)
	originalSize, err := util.FileSize(archive)
	if err != nil {
		return errors.FileOpFailed(err, "stat", archive)
	}

	tool := p.resolveTool()
	if err := p.runner.Run(ctx, p.workDir, tool, Args(archive)...); err != nil {
		return errors.PatchToolFailed(err, p.tool)
	}

	endSize, err := util.FileSize(archive)
	if err != nil {
		return errors.FileOpFailed(err, "stat", archive)
	}
	p.log.Debug().Int64("original_size", originalSize).Int64("end_size", endSize).Msg("MPQ size")
	if endSize == originalSize {
		return errors.ErrNoChange
	}
	return nil
}

// resolveTool returns the absolute path of a bare tool name found in the work
// dir. exec only searches PATH, and on Windows refuses a match in the current
// directory, while the tool normally ships next to resources/.
func (p *Patcher) resolveTool() string {
	if filepath.Base(p.tool) != p.tool {
		return p.tool
	}
	local := filepath.Join(p.workDir, p.tool)
	if ok, err := util.IsFile(local); err != nil || !ok {
		return p.tool
	}
	abs, err := filepath.Abs(local)
	if err != nil {
		return p.tool
	}
	p.log.Debug().Str("tool", filepath.ToSlash(abs)).Msg("using tool from work dir")
	return abs
}
