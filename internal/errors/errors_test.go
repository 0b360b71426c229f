package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", io.EOF, 1},
		{"config", InvalidConfig(nil, "tool is empty"), 2},
		{"canceled", ErrCanceled, 3},
		{"running", ErrTargetRunning, 4},
		{"mismatch", PathMismatch(`C:\a`, `C:\b`), 5},
		{"marker", MissingMarker("BlizzardError.exe", `C:\a`, "base install"), 6},
		{"no backup", NoBackup("x.backup"), 7},
		{"tool", PatchToolFailed(io.ErrUnexpectedEOF, "MPQEditor.exe"), 8},
		{"no change", ErrNoChange, 9},
		{"wrapped", fmt.Errorf("locate: %w", PathNotExist(`C:\a`)), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := Wrap(NoAppInstall(`C:\Battle.net`), "select latest")
	assert.True(t, Is(err, ErrNoAppInstall))
	assert.False(t, Is(err, ErrCanceled))
	assert.Equal(t, KindNoAppInstall, KindOf(err))
}

func TestErrorMessage(t *testing.T) {
	err := FileOpFailed(io.EOF, "copy", "Battle.net.mpq")
	assert.Equal(t, "failed to copy Battle.net.mpq: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)

	err = MissingMarker("Battle.net.mpq", "/bnet/Battle.net.0007", "app install")
	assert.Contains(t, err.Error(), "Battle.net.mpq")
	assert.Contains(t, err.Error(), "/bnet/Battle.net.0007")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "anything"))
	assert.Equal(t, KindUnknown, KindOf(Wrap(io.EOF, "read")))
}
