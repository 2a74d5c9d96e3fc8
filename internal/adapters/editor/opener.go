package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"clubhub/internal/ports"
)

// ErrNoEditor is returned when neither $VISUAL, $EDITOR nor a known editor is available
var ErrNoEditor = errors.New("no editor found: set $EDITOR environment variable")

// Editor implements ports.CatalogEditor
type Editor struct {
	lookPath func(string) (string, error)
	getenv   func(string) string
}

var _ ports.CatalogEditor = (*Editor)(nil)

// fallbacks are tried in order when no environment variable names an editor
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// New creates an editor backed by the process environment
func New() *Editor {
	return &Editor{lookPath: exec.LookPath, getenv: os.Getenv}
}

// Edit opens path and waits for the editor to exit
func (e *Editor) Edit(path string) error {
	cmd, err := e.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd attached to the current terminal
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	argv := e.resolve()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// resolve returns the editor argv. $VISUAL wins over $EDITOR, and both may
// carry flags such as "code --wait".
func (e *Editor) resolve() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(e.getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	for _, name := range fallbacks {
		if path, err := e.lookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
