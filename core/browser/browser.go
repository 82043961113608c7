package browser

import (
	pkgbrowser "github.com/pkg/browser"
)

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

type systemOpener struct{}

// System returns an Opener that uses the host's default browser
// (open on macOS, xdg-open on Linux/BSD, rundll32 on Windows).
func System() Opener {
	return systemOpener{}
}

func (systemOpener) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}

type nopOpener struct{}

// Nop returns an Opener that does nothing.
func Nop() Opener {
	return nopOpener{}
}

func (nopOpener) Open(string) error {
	return nil
}

// Quiet detaches the launched browser process from stdout and stderr,
// keeping the launcher's own output clean. With nil writers the child gets
// the null device, so no copying goroutine keeps OpenURL waiting on a
// browser that inherited the pipe.
func Quiet() {
	pkgbrowser.Stdout = nil
	pkgbrowser.Stderr = nil
}
