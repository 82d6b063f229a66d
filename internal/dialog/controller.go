// Package dialog implements alert, confirm and prompt dialogs as a state
// machine that hands callers a Future for the user's choice.
//
// A Controller owns the state of one dialog. A view layer subscribes to it,
// renders each Snapshot and forwards user input back through Activate,
// SetInput, Escape and BackdropClick. The controller never renders anything
// itself.
//
//	c := dialog.NewController("default")
//	ok := c.Confirm("Delete this item?", dialog.WithTitle("Confirm"))
//	// ... view calls c.Activate(0) when the user presses Ok ...
//	if v, err := ok.Wait(ctx); err == nil && v {
//	    deleteItem()
//	}
package dialog

import (
	"log/slog"
	"sync"
	"time"
)

// State is the lifecycle stage of a dialog.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Snapshot is a copy of the dialog state handed to subscribers.
type Snapshot struct {
	Name            string
	State           State
	Title           string
	Message         string
	Prompt          bool
	Input           string
	InputInvalid    bool
	ShowCloseButton bool
	Backdrop        bool
	Keyboard        bool
	Buttons         []Button
}

// IsOpen reports whether the dialog is visible. It is false while closing.
func (s Snapshot) IsOpen() bool {
	return s.State == StateOpen
}

// Controller manages one dialog. It is safe for concurrent use.
type Controller struct {
	name       string
	closeDelay time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	state   State
	cfg     showConfig
	input   string
	invalid bool
	pending *Future[any]
	closing *Future[struct{}]
	gen     uint64

	subs    map[int]func(Snapshot)
	nextSub int
}

// NewController returns a closed dialog named name.
func NewController(name string, opts ...ControllerOption) *Controller {
	c := &Controller{
		name:       name,
		closeDelay: DefaultCloseDelay,
		logger:     slog.Default(),
		cfg:        defaultShowConfig(),
		subs:       make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Name() string {
	return c.name
}

// Subscribe registers fn to receive a Snapshot after every state change.
// fn is called outside the controller lock and may call back into it.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Name:            c.name,
		State:           c.state,
		Title:           c.cfg.title,
		Message:         c.cfg.message,
		Prompt:          c.cfg.prompt,
		Input:           c.input,
		InputInvalid:    c.invalid,
		ShowCloseButton: c.cfg.showCloseButton,
		Backdrop:        c.cfg.backdrop,
		Keyboard:        c.cfg.keyboard,
		Buttons:         append([]Button(nil), c.cfg.buttons...),
	}
}

// commitLocked captures the snapshot and subscribers to notify once the
// lock is released.
func (c *Controller) commitLocked() func() {
	snap := c.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(snap)
		}
	}
}

// Show opens the dialog and returns a future for the value passed to Close.
//
// Showing while a previous result is still pending resolves that result
// with nil so no caller is left waiting forever. Showing while closing
// cancels the transition to closed.
func (c *Controller) Show(opts ...Option) *Future[any] {
	cfg := defaultShowConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c.mu.Lock()
	superseded := c.pending
	c.pending = newFuture[any]()
	f := c.pending
	c.gen++
	c.closing = nil
	c.cfg = cfg
	c.input = ""
	c.invalid = false
	c.state = StateOpen
	notify := c.commitLocked()
	c.mu.Unlock()

	if superseded != nil && superseded.resolve(nil) {
		c.logger.Debug("dialog result superseded", "dialog", c.name)
	}
	c.logger.Debug("dialog shown", "dialog", c.name, "prompt", cfg.prompt, "buttons", len(cfg.buttons))
	notify()
	return f
}

// Close hides the dialog and, after the close delay, resolves the pending
// result with result. The returned future settles when the dialog is fully
// closed. Closing a dialog that is not open is a no-op.
func (c *Controller) Close(result any) *Future[struct{}] {
	c.mu.Lock()
	if c.state != StateOpen {
		closing := c.closing
		c.mu.Unlock()
		if closing != nil {
			return closing
		}
		return resolvedFuture(struct{}{})
	}

	pending := c.pending
	c.pending = nil
	done := newFuture[struct{}]()
	c.closing = done
	c.state = StateClosing
	gen := c.gen
	notify := c.commitLocked()
	c.mu.Unlock()

	c.logger.Debug("dialog closing", "dialog", c.name, "delay", c.closeDelay)
	notify()

	finish := func() {
		c.mu.Lock()
		var notify func()
		if c.gen == gen && c.state == StateClosing {
			c.state = StateClosed
			c.closing = nil
			notify = c.commitLocked()
		}
		c.mu.Unlock()

		if notify != nil {
			c.logger.Debug("dialog closed", "dialog", c.name)
			notify()
		}
		if pending != nil {
			pending.resolve(result)
		}
		done.resolve(struct{}{})
	}

	if c.closeDelay <= 0 {
		finish()
	} else {
		time.AfterFunc(c.closeDelay, finish)
	}
	return done
}

// Activate presses button i. It reports false when the dialog is not open
// or i is out of range.
func (c *Controller) Activate(i int) bool {
	c.mu.Lock()
	if c.state != StateOpen || i < 0 || i >= len(c.cfg.buttons) {
		c.mu.Unlock()
		return false
	}
	btn := c.cfg.buttons[i]
	c.mu.Unlock()

	if btn.OnActivate != nil {
		btn.OnActivate(c)
	}
	return true
}

// Escape closes the dialog if keyboard dismissal is enabled.
func (c *Controller) Escape() bool {
	return c.dismiss(func(cfg showConfig) bool { return cfg.keyboard })
}

// BackdropClick closes the dialog if backdrop dismissal is enabled.
func (c *Controller) BackdropClick() bool {
	return c.dismiss(func(cfg showConfig) bool { return cfg.backdrop })
}

func (c *Controller) dismiss(allowed func(showConfig) bool) bool {
	c.mu.Lock()
	ok := c.state == StateOpen && allowed(c.cfg)
	c.mu.Unlock()
	if ok {
		c.Close(nil)
	}
	return ok
}

// Input returns the prompt text.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput stores the prompt text typed by the user.
func (c *Controller) SetInput(s string) {
	c.mu.Lock()
	if c.input == s {
		c.mu.Unlock()
		return
	}
	c.input = s
	notify := c.commitLocked()
	c.mu.Unlock()
	notify()
}

// SetInputInvalid flags the prompt text as rejected.
func (c *Controller) SetInputInvalid(invalid bool) {
	c.mu.Lock()
	c.invalid = invalid
	notify := c.commitLocked()
	c.mu.Unlock()
	notify()
}
