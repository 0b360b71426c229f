package bnetrebrand

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/internal/rebrand"
	"github.com/sjzar/bnetrebrand/internal/rebrand/conf"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"patch", "restore", "info"} {
		assert.True(t, names[want], want)
	}
}

func TestPrintReport(t *testing.T) {
	r := &rebrand.Report{
		BaseDir:     "/games/Battle.net",
		AppDir:      "/games/Battle.net/Battle.net.0007",
		ArchiveSize: 1000,
		BackupSize:  -1,
		AppErr:      errors.NoBackup("x"),
		Status: map[string]string{
			"Battle.net.exe":          model.StatusOnline,
			"Battle.net Launcher.exe": model.StatusOffline,
			"Battle.net Helper.exe":   model.StatusOffline,
		},
		Processes: []*model.Process{{PID: 77, Name: "Battle.net.exe", ExePath: "/games/Battle.net/Battle.net.exe"}},
	}
	var buf bytes.Buffer
	printReport(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "Registry dir:  (none)")
	assert.Contains(t, out, "Base install:  /games/Battle.net")
	assert.Contains(t, out, "Archive size:  1000 bytes")
	assert.Contains(t, out, "Backup size:   (missing)")
	assert.Contains(t, out, "backup file not found")
	assert.Contains(t, out, "pid 77")
	assert.Regexp(t, `Battle\.net\.exe\s+online`, out)
}

func TestInitLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bnetrebrand.log")
	closer, err := initLog(&conf.Config{LogFile: path, Debug: true})
	require.NoError(t, err)
	closer()

	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = initLog(&conf.Config{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

func TestFinishClosesLog(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"ok", nil, 0},
		{"no change", errors.ErrNoChange, 9},
		{"canceled", errors.ErrCanceled, 3},
		{"running", errors.ErrTargetRunning, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := 0
			closeLog = func() { closed++ }

			assert.Equal(t, tt.code, finish(tt.err))
			assert.Equal(t, 1, closed)
			assert.Nil(t, closeLog)

			finish(tt.err)
			assert.Equal(t, 1, closed, "closed once")
		})
	}
}

func TestFinishWritesLogFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bnetrebrand.log")
	closer, err := initLog(&conf.Config{LogFile: path})
	require.NoError(t, err)
	closeLog = closer

	assert.Equal(t, 8, finish(errors.PatchToolFailed(os.ErrNotExist, "MPQEditor.exe")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"patch_tool"`)
	assert.Nil(t, closeLog)
}
