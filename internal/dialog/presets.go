package dialog

// Button classes used by the preset dialogs.
const (
	ClassPrimary   = "primary"
	ClassSecondary = "secondary"
)

// PromptResult is the outcome of Prompt. OK is false when the prompt was
// cancelled or dismissed.
type PromptResult struct {
	Value string
	OK    bool
}

// Alert shows message with a single Ok button. The result is always nil.
// Backdrop and keyboard dismissal are off unless opts turn them on.
func (c *Controller) Alert(message string, opts ...Option) *Future[any] {
	base := []Option{
		WithMessage(message),
		WithBackdrop(false),
		WithKeyboard(false),
		WithButtons(Button{
			Label: "Ok",
			Class: ClassPrimary,
			OnActivate: func(c *Controller) {
				c.Close(nil)
			},
		}),
	}
	return c.Show(append(base, opts...)...)
}

// Confirm shows message with Ok and Cancel buttons and resolves to true
// only when Ok is pressed.
func (c *Controller) Confirm(message string, opts ...Option) *Future[bool] {
	base := []Option{
		WithMessage(message),
		WithBackdrop(false),
		WithKeyboard(false),
		WithButtons(
			Button{
				Label:      "Ok",
				Class:      ClassPrimary,
				OnActivate: func(c *Controller) { c.Close(true) },
			},
			Button{
				Label:      "Cancel",
				Class:      ClassSecondary,
				OnActivate: func(c *Controller) { c.Close(false) },
			},
		),
	}
	return mapFuture(c.Show(append(base, opts...)...), func(v any) bool {
		ok, _ := v.(bool)
		return ok
	})
}

// Prompt shows message with a text input. Ok with an empty input marks the
// input invalid and keeps the dialog open.
func (c *Controller) Prompt(message string, opts ...Option) *Future[PromptResult] {
	base := []Option{
		WithMessage(message),
		WithPrompt(true),
		WithBackdrop(false),
		WithKeyboard(false),
		WithButtons(
			Button{
				Label: "Ok",
				Class: ClassPrimary,
				OnActivate: func(c *Controller) {
					if v := c.Input(); v == "" {
						c.SetInputInvalid(true)
					} else {
						c.Close(v)
					}
				},
			},
			Button{
				Label:      "Cancel",
				Class:      ClassSecondary,
				OnActivate: func(c *Controller) { c.Close(nil) },
			},
		),
	}
	return mapFuture(c.Show(append(base, opts...)...), func(v any) PromptResult {
		s, ok := v.(string)
		return PromptResult{Value: s, OK: ok && s != ""}
	})
}
