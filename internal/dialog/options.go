package dialog

import (
	"log/slog"
	"time"
)

// DefaultCloseDelay matches the leave transition of the dialog view.
const DefaultCloseDelay = 200 * time.Millisecond

// Button is one action in the dialog footer.
type Button struct {
	Label string
	Class string

	// OnActivate runs when the button is pressed. A nil handler does nothing.
	OnActivate func(c *Controller)
}

// showConfig is the resolved set of options for one Show call.
type showConfig struct {
	title           string
	message         string
	prompt          bool
	backdrop        bool
	keyboard        bool
	showCloseButton bool
	buttons         []Button
}

func defaultShowConfig() showConfig {
	return showConfig{
		backdrop: true,
		keyboard: true,
	}
}

// Option configures a single Show call.
type Option func(*showConfig)

func WithTitle(title string) Option {
	return func(c *showConfig) { c.title = title }
}

func WithMessage(message string) Option {
	return func(c *showConfig) { c.message = message }
}

// WithPrompt turns on the text input.
func WithPrompt(prompt bool) Option {
	return func(c *showConfig) { c.prompt = prompt }
}

// WithBackdrop controls whether a click outside the dialog closes it.
func WithBackdrop(dismiss bool) Option {
	return func(c *showConfig) { c.backdrop = dismiss }
}

// WithKeyboard controls whether Escape closes the dialog.
func WithKeyboard(dismiss bool) Option {
	return func(c *showConfig) { c.keyboard = dismiss }
}

func WithCloseButton(show bool) Option {
	return func(c *showConfig) { c.showCloseButton = show }
}

// WithButtons replaces the button set.
func WithButtons(buttons ...Button) Option {
	return func(c *showConfig) {
		c.buttons = append([]Button(nil), buttons...)
	}
}

// ControllerOption configures a Controller at construction.
type ControllerOption func(*Controller)

// WithCloseDelay sets how long Close waits before the dialog is closed and
// its result delivered. Zero or negative closes synchronously.
func WithCloseDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.closeDelay = d }
}

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
