// Package system exposes window control and host status operations to
// the UI shell.
package system

// WindowController manipulates the UI shell's main window. The concrete
// implementation is supplied by whichever shell embeds the host; a
// headless host uses NopController.
type WindowController interface {
	Minimize() error
	Maximize() error
	Close() error
}

// NopController is a WindowController for hosts running without a
// window, e.g. in tests or headless mode.
type NopController struct{}

func (NopController) Minimize() error { return nil }
func (NopController) Maximize() error { return nil }
func (NopController) Close() error    { return nil }
