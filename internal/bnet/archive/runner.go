package archive

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Runner executes an external command in dir and waits for it.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec and forwards their output to the log.
type ExecRunner struct {
	log zerolog.Logger
}

func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{log: logger.With().Str("component", "exec").Logger()}
}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.log.Info().Str("dir", dir).Msgf("› %s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	hideWindow(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go r.forward(&wg, stdout, zerolog.DebugLevel)
	go r.forward(&wg, stderr, zerolog.WarnLevel)
	wg.Wait()

	return cmd.Wait()
}

func (r *ExecRunner) forward(wg *sync.WaitGroup, rd io.Reader, level zerolog.Level) {
	defer wg.Done()
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			r.log.WithLevel(level).Msg(line)
		}
	}
}
