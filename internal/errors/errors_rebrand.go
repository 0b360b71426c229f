package errors

import "fmt"

var (
	ErrCanceled      = New(nil, KindCanceled, "user canceled the dialog")
	ErrTargetRunning = New(nil, KindTargetRunning, "Battle.net is not closed, can not access the MPQ file")
	ErrNoAppInstall  = New(nil, KindNoAppInstall, "no Battle.net app install found")
	ErrNoChange      = New(nil, KindNoChange,
		"the patch operation was run, but the original and current size of the MPQ file is the same. "+
			"This probably means that Battle.net is still running and is accessing Battle.net.mpq, "+
			"which is preventing this program from opening the file. "+
			"Make sure Battle.net is completely closed (from tray)")
)

func InvalidConfig(cause error, format string, args ...interface{}) *Error {
	return New(cause, KindConfig, "invalid config: "+fmt.Sprintf(format, args...))
}

func PathNotExist(path string) *Error {
	return Newf(nil, KindPathNotExist, "path does not exist: %s", path)
}

func PathMismatch(registryPath, userPath string) *Error {
	return Newf(nil, KindPathMismatch,
		"registry path and user defined path do not match: %s != %s", registryPath, userPath)
}

// MissingMarker reports a directory that lacks one of the files proving its role.
func MissingMarker(file, dir, role string) *Error {
	return Newf(nil, KindMissingMarker,
		"the following path does not seem to be the %s of Battle.net because it does not have the file: %s in it. Path: %s",
		role, file, dir)
}

func NoAppInstall(dir string) *Error {
	return Newf(nil, KindNoAppInstall, "no Battle.net app install found in %s", dir)
}

func NoBackup(path string) *Error {
	return Newf(nil, KindNoBackup, "backup file not found: %s", path)
}

func FileOpFailed(cause error, op, path string) *Error {
	return Newf(cause, KindIO, "failed to %s %s", op, path)
}

func PatchToolFailed(cause error, tool string) *Error {
	return Newf(cause, KindPatchTool, "patch tool %s failed", tool)
}
