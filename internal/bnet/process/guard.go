package process

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sjzar/bnetrebrand/internal/bnet/model"
)

const (
	DefaultTerminateTimeout = 2 * time.Second
	pollInterval            = 100 * time.Millisecond
)

// Guard makes sure Battle.net is not holding the archive open.
type Guard struct {
	lister  Lister
	timeout time.Duration
	log     zerolog.Logger
}

func NewGuard(lister Lister, timeout time.Duration, logger zerolog.Logger) *Guard {
	if timeout <= 0 {
		timeout = DefaultTerminateTimeout
	}
	return &Guard{
		lister:  lister,
		timeout: timeout,
		log:     logger.With().Str("component", "process").Logger(),
	}
}

// IsClosed reports false as soon as any Battle.net process is found.
func (g *Guard) IsClosed(ctx context.Context) (bool, error) {
	handles, err := g.lister.Processes(ctx)
	if err != nil {
		return false, err
	}
	for _, h := range handles {
		name, err := h.Name(ctx)
		if err != nil {
			g.log.Warn().Err(err).Int32("pid", h.PID()).Msg("tried to access a process that does not exist")
			continue
		}
		if model.IsTargetName(name) {
			g.log.Debug().Int32("pid", h.PID()).Str("name", name).Msg("Battle.net process is running")
			return false, nil
		}
	}
	return true, nil
}

// Running returns a snapshot of every Battle.net process.
func (g *Guard) Running(ctx context.Context) ([]*model.Process, error) {
	handles, err := g.lister.Processes(ctx)
	if err != nil {
		return nil, err
	}
	var procs []*model.Process
	for _, h := range handles {
		name, err := h.Name(ctx)
		if err != nil {
			g.log.Warn().Err(err).Int32("pid", h.PID()).Msg("tried to access a process that does not exist")
			continue
		}
		if !model.IsTargetName(name) {
			continue
		}
		exe, err := h.Exe(ctx)
		if err != nil {
			g.log.Debug().Err(err).Int32("pid", h.PID()).Msg("exe path unavailable")
		}
		procs = append(procs, &model.Process{
			PID:     h.PID(),
			Name:    name,
			ExePath: exe,
			Status:  model.StatusOnline,
		})
	}
	return procs, nil
}

// Terminate asks every primary Battle.net process to exit and waits up to the
// configured timeout for each one. A process that does not exit in time is
// left for the caller's re-check to catch.
func (g *Guard) Terminate(ctx context.Context) error {
	handles, err := g.lister.Processes(ctx)
	if err != nil {
		return err
	}
	for _, h := range handles {
		name, err := h.Name(ctx)
		if err != nil {
			g.log.Warn().Err(err).Int32("pid", h.PID()).Msg("tried to access a process that does not exist")
			continue
		}
		if name != model.PrimaryProcessName {
			continue
		}
		g.log.Info().Int32("pid", h.PID()).Msg("terminating Battle.net")
		if err := h.Terminate(ctx); err != nil {
			g.log.Warn().Err(err).Int32("pid", h.PID()).Msg("terminate failed, process may already be gone")
			continue
		}
		if err := g.wait(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (g *Guard) wait(ctx context.Context, h Handle) error {
	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		running, err := h.IsRunning(waitCtx)
		if err != nil || !running {
			return nil
		}
		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			g.log.Warn().Int32("pid", h.PID()).Dur("timeout", g.timeout).Msg("process did not exit in time")
			return nil
		case <-ticker.C:
		}
	}
}
