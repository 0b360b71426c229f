package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the command layer can map it to an exit code.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindCanceled
	KindTargetRunning
	KindPathNotExist
	KindPathMismatch
	KindMissingMarker
	KindNoAppInstall
	KindIO
	KindNoBackup
	KindPatchTool
	KindNoChange
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCanceled:
		return "canceled"
	case KindTargetRunning:
		return "target_running"
	case KindPathNotExist:
		return "path_not_exist"
	case KindPathMismatch:
		return "path_mismatch"
	case KindMissingMarker:
		return "missing_marker"
	case KindNoAppInstall:
		return "no_app_install"
	case KindIO:
		return "io"
	case KindNoBackup:
		return "no_backup"
	case KindPatchTool:
		return "patch_tool"
	case KindNoChange:
		return "no_change"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind, so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func New(cause error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Newf(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Wrap keeps the kind of an existing *Error and prefixes the message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Kind: e.Kind, Message: message, Cause: err}
	}
	return &Error{Kind: KindUnknown, Message: message, Cause: err}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// KindOf returns the kind of the outermost *Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps err to the process exit status. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindConfig:
		return 2
	case KindCanceled:
		return 3
	case KindTargetRunning:
		return 4
	case KindPathNotExist, KindPathMismatch:
		return 5
	case KindMissingMarker, KindNoAppInstall:
		return 6
	case KindIO, KindNoBackup:
		return 7
	case KindPatchTool:
		return 8
	case KindNoChange:
		return 9
	default:
		return 1
	}
}
