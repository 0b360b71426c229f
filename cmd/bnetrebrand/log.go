package bnetrebrand

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/bnetrebrand/internal/errors"
	"github.com/sjzar/bnetrebrand/internal/rebrand/conf"
)

// initLog installs the process logger and returns a func that closes the log file, if any.
func initLog(c *conf.Config) (func(), error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: time.RFC3339}}
	closer := func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.FileOpFailed(err, "open log file", c.LogFile)
		}
		writers = append(writers, f)
		closer = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
	return closer, nil
}
