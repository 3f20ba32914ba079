package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"careerpath/internal/ports"
)

var _ ports.LinkOpener = (*Opener)(nil)

// Opener implements ports.LinkOpener with the platform's URL handler
type Opener struct {
	run func(name string, args ...string) error
}

// NewOpener creates a new link opener
func NewOpener() *Opener {
	return &Opener{run: func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}}
}

// Open validates rawURL and hands it to the OS
func (o *Opener) Open(rawURL string) error {
	u, err := CheckURL(rawURL)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return o.run("open", u)
	case "linux", "freebsd", "openbsd":
		return o.run("xdg-open", u)
	case "windows":
		return o.run("cmd", "/c", "start", "", u)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// CheckURL accepts only absolute http(s) URLs
func CheckURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("refusing to open %q: only http and https links are supported", rawURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid url %q: missing host", rawURL)
	}
	return u.String(), nil
}
