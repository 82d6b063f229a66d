// Package tui renders dialog controllers and paginators in the terminal
// with Bubble Tea.
//
// The models here are the view layer only: every state change goes through
// the dialog.Controller or pagination.Paginator they wrap, and the models
// re-read state after each message.
//
// # Dialogs
//
//	ctrl := dialog.NewController("default")
//	answer := ctrl.Confirm("Delete the branch?", dialog.WithTitle("Confirm"))
//
//	m := tui.NewDialogModel(ctrl, tui.WithMarkdown(true))
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	unsubscribe := ctrl.Subscribe(tui.Forward(p))
//	defer unsubscribe()
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
//	ok, err := answer.Wait(ctx)
//
// Keys: Tab/Shift+Tab (and ←/→ outside prompts) move button focus, Enter
// presses the focused button, Esc dismisses when the dialog allows it.
// A left click outside the box counts as a backdrop click.
//
// # Pagination
//
//	p := pagination.New(total)
//	m := tui.NewPagerModel(p)
//
// Keys: ←/→ previous/next, Home/End first/last, Tab cycles page links and
// Enter jumps to the focused one.
package tui
