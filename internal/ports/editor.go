package ports

import "os/exec"

// CatalogEditor opens a catalog file in an external editor
type CatalogEditor interface {
	// Edit blocks until the editor exits
	Edit(path string) error

	// Command returns the editor process without starting it, for callers
	// that hand the terminal over themselves
	Command(path string) (*exec.Cmd, error)
}
