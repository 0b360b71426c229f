package ui

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sjzar/bnetrebrand/pkg/util"
)

const maxCompletions = 20

// Terminal renders dialogs as full-screen tview applications, one per question.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) AskYesNo(ctx context.Context, title, message string) (bool, error) {
	app := tview.NewApplication()
	answer := false
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			answer = label == "Yes"
			app.Stop()
		})
	if err := run(ctx, app, modal); err != nil {
		return false, err
	}
	return answer, nil
}

func (t *Terminal) ShowInfo(ctx context.Context, title, message string) error {
	app := tview.NewApplication()
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			app.Stop()
		})
	return run(ctx, app, modal)
}

func (t *Terminal) ChooseDirectory(ctx context.Context, title, initialDir string, mustExist bool) (string, error) {
	app := tview.NewApplication()
	var selected string

	status := tview.NewTextView().
		SetTextColor(tcell.ColorRed).
		SetTextAlign(tview.AlignCenter)

	input := tview.NewInputField().
		SetLabel("Directory: ").
		SetText(filepath.FromSlash(initialDir)).
		SetFieldWidth(0).
		SetAutocompleteFunc(completeDir)

	form := tview.NewForm().SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true).SetTitle(" " + title + " ")
	form.AddFormItem(input)
	form.AddButton("Select", func() {
		dir := strings.TrimSpace(input.GetText())
		if dir == "" {
			status.SetText("Please enter a directory.")
			return
		}
		if mustExist {
			if ok, err := util.IsDir(dir); err != nil || !ok {
				status.SetText("Directory does not exist: " + dir)
				return
			}
		}
		selected = dir
		app.Stop()
	})
	form.AddButton("Cancel", func() {
		selected = ""
		app.Stop()
	})
	form.SetCancelFunc(func() {
		selected = ""
		app.Stop()
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(form, 7, 0, true).
		AddItem(status, 1, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	if err := run(ctx, app, layout); err != nil {
		return "", err
	}
	return selected, nil
}

// run blocks until the application stops or ctx is done.
func run(ctx context.Context, app *tview.Application, root tview.Primitive) error {
	stop := context.AfterFunc(ctx, app.Stop)
	defer stop()
	if err := app.SetRoot(root, true).EnableMouse(true).Run(); err != nil {
		return err
	}
	return ctx.Err()
}

// completeDir suggests subdirectories of the directory part of text whose
// names start with the remaining part, case-insensitively.
func completeDir(text string) []string {
	if text == "" {
		return nil
	}
	dir, prefix := filepath.Split(text)
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var out []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name())+string(filepath.Separator))
	}
	sort.Strings(out)
	if len(out) > maxCompletions {
		out = out[:maxCompletions]
	}
	return out
}
