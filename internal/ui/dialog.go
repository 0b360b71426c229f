package ui

import "context"

// Dialog is the interactive surface the pipeline talks to.
type Dialog interface {
	// ChooseDirectory returns "" when the user cancels.
	ChooseDirectory(ctx context.Context, title, initialDir string, mustExist bool) (string, error)
	AskYesNo(ctx context.Context, title, message string) (bool, error)
	ShowInfo(ctx context.Context, title, message string) error
}

// Preset answers from values given up front and defers to Next for the rest.
// Next may be nil when every question is answered by the preset.
type Preset struct {
	Dir       string
	AssumeYes bool
	Quiet     bool
	Next      Dialog
}

func (p *Preset) ChooseDirectory(ctx context.Context, title, initialDir string, mustExist bool) (string, error) {
	if p.Dir != "" {
		return p.Dir, nil
	}
	if p.Next == nil {
		return "", nil
	}
	return p.Next.ChooseDirectory(ctx, title, initialDir, mustExist)
}

func (p *Preset) AskYesNo(ctx context.Context, title, message string) (bool, error) {
	if p.AssumeYes {
		return true, nil
	}
	if p.Next == nil {
		return false, nil
	}
	return p.Next.AskYesNo(ctx, title, message)
}

func (p *Preset) ShowInfo(ctx context.Context, title, message string) error {
	if p.Quiet || p.Next == nil {
		return nil
	}
	return p.Next.ShowInfo(ctx, title, message)
}
