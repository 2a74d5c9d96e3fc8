package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"clubhub/internal/ports"
)

// Opener implements ports.URLOpener using the system URL handler
type Opener struct {
	goos string
}

var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates an opener for the running operating system
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open shows rawURL in the user's browser
func (o *Opener) Open(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command returns the exec.Cmd that opens rawURL. $BROWSER wins over
// the platform handler.
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if b := os.Getenv("BROWSER"); b != "" {
		return exec.Command(b, u), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", u), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", u), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", u), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// ValidateURL accepts absolute http and https URLs only
func ValidateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("spot has no picture URL")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL has no host: %s", rawURL)
	}
	return u.String(), nil
}
