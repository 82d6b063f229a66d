package dialog

import (
	"context"
	"sync"
	"testing"
	"time"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController("test", WithCloseDelay(0))
}

func waitFor[T any](t *testing.T, f *Future[T]) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := f.Wait(ctx)
	if err != nil {
		t.Fatalf("future did not settle: %v", err)
	}
	return v
}

func TestShowDefaults(t *testing.T) {
	c := newTestController(t)
	c.Show(WithTitle("Title"), WithMessage("Body"))

	s := c.Snapshot()
	if s.State != StateOpen || !s.IsOpen() {
		t.Fatalf("state = %s, want open", s.State)
	}
	if s.Title != "Title" || s.Message != "Body" {
		t.Errorf("title/message = %q/%q", s.Title, s.Message)
	}
	if !s.Backdrop || !s.Keyboard {
		t.Errorf("backdrop=%v keyboard=%v, want both true", s.Backdrop, s.Keyboard)
	}
	if s.ShowCloseButton || s.Prompt {
		t.Errorf("closeButton=%v prompt=%v, want both false", s.ShowCloseButton, s.Prompt)
	}
	if s.Input != "" || s.InputInvalid {
		t.Errorf("input=%q invalid=%v, want reset", s.Input, s.InputInvalid)
	}
}

func TestShowResetsInput(t *testing.T) {
	c := newTestController(t)
	c.Prompt("name?")
	c.SetInput("draft")
	c.SetInputInvalid(true)

	c.Show(WithPrompt(true))
	s := c.Snapshot()
	if s.Input != "" || s.InputInvalid {
		t.Errorf("after Show input=%q invalid=%v, want reset", s.Input, s.InputInvalid)
	}
}

func TestAlertResolvesNil(t *testing.T) {
	c := newTestController(t)
	f := c.Alert("x")

	s := c.Snapshot()
	if len(s.Buttons) != 1 || s.Buttons[0].Label != "Ok" {
		t.Fatalf("buttons = %+v, want single Ok", s.Buttons)
	}
	if s.Backdrop || s.Keyboard {
		t.Errorf("alert should not be dismissable by default")
	}
	if !c.Activate(0) {
		t.Fatal("Activate(0) returned false")
	}
	if v := waitFor(t, f); v != nil {
		t.Errorf("alert result = %v, want nil", v)
	}
	if c.Snapshot().State != StateClosed {
		t.Errorf("state = %s, want closed", c.Snapshot().State)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name   string
		button int
		want   bool
	}{
		{"ok", 0, true},
		{"cancel", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			f := c.Confirm("x")
			c.Activate(tt.button)
			if got := waitFor(t, f); got != tt.want {
				t.Errorf("confirm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptValidation(t *testing.T) {
	c := newTestController(t)
	f := c.Prompt("x")

	if !c.Snapshot().Prompt {
		t.Fatal("prompt flag not set")
	}

	c.Activate(0)
	s := c.Snapshot()
	if s.State != StateOpen {
		t.Fatalf("state after empty Ok = %s, want open", s.State)
	}
	if !s.InputInvalid {
		t.Error("InputInvalid should be set after empty Ok")
	}
	if _, settled := f.Result(); settled {
		t.Fatal("future settled on invalid input")
	}

	c.SetInput("foo")
	c.Activate(0)
	got := waitFor(t, f)
	if !got.OK || got.Value != "foo" {
		t.Errorf("prompt = %+v, want foo", got)
	}
	if c.Snapshot().State != StateClosed {
		t.Errorf("state = %s, want closed", c.Snapshot().State)
	}
}

func TestPromptCancel(t *testing.T) {
	c := newTestController(t)
	f := c.Prompt("x")
	c.SetInput("typed")
	c.Activate(1)
	if got := waitFor(t, f); got.OK {
		t.Errorf("cancelled prompt = %+v, want not OK", got)
	}
}

func TestCallerOptionsOverridePresets(t *testing.T) {
	c := newTestController(t)
	c.Confirm("x", WithKeyboard(true), WithTitle("Sure?"))
	s := c.Snapshot()
	if !s.Keyboard || s.Title != "Sure?" {
		t.Errorf("keyboard=%v title=%q, want overrides applied", s.Keyboard, s.Title)
	}
	if len(s.Buttons) != 2 {
		t.Errorf("buttons = %d, want 2", len(s.Buttons))
	}
}

func TestCloseIdempotent(t *testing.T) {
	c := newTestController(t)
	f := c.Show()

	c.Close("first")
	first := c.Snapshot()
	c.Close("second")
	second := c.Snapshot()

	if first.State != StateClosed || second.State != StateClosed {
		t.Fatalf("states = %s/%s, want closed", first.State, second.State)
	}
	if v := waitFor(t, f); v != "first" {
		t.Errorf("result = %v, want first", v)
	}
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	c := newTestController(t)
	calls := 0
	c.Subscribe(func(Snapshot) { calls++ })

	waitFor(t, c.Close(nil))
	if calls != 0 {
		t.Errorf("subscribers notified %d times, want 0", calls)
	}
}

func TestCloseDelay(t *testing.T) {
	c := NewController("delayed", WithCloseDelay(20*time.Millisecond))
	f := c.Confirm("x")
	c.Activate(0)

	if s := c.Snapshot(); s.State != StateClosing || s.IsOpen() {
		t.Fatalf("state = %s, want closing", s.State)
	}
	if _, settled := f.Result(); settled {
		t.Fatal("result settled before close delay")
	}

	// A second close during the transition joins the first.
	done := c.Close(false)
	waitFor(t, done)

	if c.Snapshot().State != StateClosed {
		t.Errorf("state = %s, want closed", c.Snapshot().State)
	}
	if got := waitFor(t, f); !got {
		t.Errorf("confirm = %v, want true", got)
	}
}

func TestShowSupersedesPending(t *testing.T) {
	c := newTestController(t)
	first := c.Confirm("first")
	second := c.Show(WithMessage("second"))

	if got := waitFor(t, first); got {
		t.Errorf("superseded confirm = %v, want false", got)
	}
	if _, settled := second.Result(); settled {
		t.Fatal("new future settled early")
	}
	c.Close(42)
	if v := waitFor(t, second); v != 42 {
		t.Errorf("second result = %v, want 42", v)
	}
}

func TestShowDuringClosing(t *testing.T) {
	c := NewController("reopen", WithCloseDelay(20*time.Millisecond))
	first := c.Show()
	closed := c.Close("done")

	second := c.Show(WithMessage("again"))
	waitFor(t, closed)

	if v := waitFor(t, first); v != "done" {
		t.Errorf("first result = %v, want done", v)
	}
	if s := c.Snapshot(); s.State != StateOpen || s.Message != "again" {
		t.Errorf("state = %s message = %q, want reopened dialog", s.State, s.Message)
	}
	if _, settled := second.Result(); settled {
		t.Error("second future settled by the earlier close")
	}
}

func TestDismissFlags(t *testing.T) {
	c := newTestController(t)

	c.Show(WithKeyboard(false), WithBackdrop(false))
	if c.Escape() || c.BackdropClick() {
		t.Fatal("dismissal should be disabled")
	}

	f := c.Show()
	if !c.Escape() {
		t.Fatal("Escape should close a keyboard-dismissable dialog")
	}
	if v := waitFor(t, f); v != nil {
		t.Errorf("escape result = %v, want nil", v)
	}

	c.Show()
	if !c.BackdropClick() {
		t.Fatal("BackdropClick should close a backdrop-dismissable dialog")
	}
}

func TestActivateOutOfRange(t *testing.T) {
	c := newTestController(t)
	if c.Activate(0) {
		t.Error("Activate on closed dialog should fail")
	}
	c.Alert("x")
	if c.Activate(1) || c.Activate(-1) {
		t.Error("Activate out of range should fail")
	}
}

func TestSubscribe(t *testing.T) {
	c := newTestController(t)

	var mu sync.Mutex
	var states []State
	unsubscribe := c.Subscribe(func(s Snapshot) {
		mu.Lock()
		states = append(states, s.State)
		mu.Unlock()
	})

	c.Alert("x")
	c.Activate(0)
	unsubscribe()
	c.Alert("y")

	mu.Lock()
	defer mu.Unlock()
	want := []State{StateOpen, StateClosing, StateClosed}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %s, want %s", i, states[i], want[i])
		}
	}
}

func TestFutureWaitContext(t *testing.T) {
	c := newTestController(t)
	f := c.Show()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait error = %v, want context.Canceled", err)
	}
}
