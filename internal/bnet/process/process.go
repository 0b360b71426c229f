package process

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
)

// Handle is a live OS process as seen by the guard.
type Handle interface {
	PID() int32
	Name(ctx context.Context) (string, error)
	Exe(ctx context.Context) (string, error)
	IsRunning(ctx context.Context) (bool, error)
	Terminate(ctx context.Context) error
}

// Lister enumerates live processes.
type Lister interface {
	Processes(ctx context.Context) ([]Handle, error)
}

// SystemLister lists processes through gopsutil.
type SystemLister struct{}

func NewSystemLister() *SystemLister {
	return &SystemLister{}
}

func (l *SystemLister) Processes(ctx context.Context) ([]Handle, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	handles := make([]Handle, 0, len(procs))
	for _, p := range procs {
		handles = append(handles, &systemHandle{p: p})
	}
	return handles, nil
}

type systemHandle struct {
	p *process.Process
}

func (h *systemHandle) PID() int32 {
	return h.p.Pid
}

func (h *systemHandle) Name(ctx context.Context) (string, error) {
	return h.p.NameWithContext(ctx)
}

func (h *systemHandle) Exe(ctx context.Context) (string, error) {
	return h.p.ExeWithContext(ctx)
}

func (h *systemHandle) IsRunning(ctx context.Context) (bool, error) {
	return h.p.IsRunningWithContext(ctx)
}

func (h *systemHandle) Terminate(ctx context.Context) error {
	return h.p.TerminateWithContext(ctx)
}
