package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/uikit/internal/config"
	"github.com/marcus/uikit/internal/dialog"
	"github.com/marcus/uikit/pkg/tui"
)

var dialogCmd = &cobra.Command{
	Use:   "dialog",
	Short: "Ask the user something in a terminal dialog",
	Long: `Show an alert, confirm or prompt dialog and print the answer.

  uikit dialog alert "Build finished"
  uikit dialog confirm "Deploy to production?" && deploy
  name=$(uikit dialog prompt "Branch name?")

confirm exits 1 when the user cancels. prompt exits 1 when cancelled and
prints the entered text otherwise.`,
	GroupID: "components",
}

var dialogAlertCmd = &cobra.Command{
	Use:   "alert MESSAGE",
	Short: "Show a message with an Ok button",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDialog(kindAlert),
}

var dialogConfirmCmd = &cobra.Command{
	Use:   "confirm MESSAGE",
	Short: "Ask a yes/no question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDialog(kindConfirm),
}

var dialogPromptCmd = &cobra.Command{
	Use:   "prompt MESSAGE",
	Short: "Ask for a line of text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDialog(kindPrompt),
}

func init() {
	rootCmd.AddCommand(dialogCmd)
	dialogCmd.AddCommand(dialogAlertCmd, dialogConfirmCmd, dialogPromptCmd)

	dialogCmd.PersistentFlags().String("title", "", "Dialog title")
	dialogCmd.PersistentFlags().Bool("markdown", false, "Render the message as markdown")
	dialogCmd.PersistentFlags().Bool("dismissable", false, "Allow Esc and clicks outside the dialog to cancel")
	dialogCmd.PersistentFlags().Bool("close-button", false, "Show a close button in the title bar (ctrl+w)")
	dialogCmd.PersistentFlags().Duration("close-delay", dialog.DefaultCloseDelay, "Delay between closing and returning the answer")
	dialogCmd.PersistentFlags().Int("width", 50, "Dialog width in columns")
}

type dialogKind int

const (
	kindAlert dialogKind = iota
	kindConfirm
	kindPrompt
)

// dialogAnswer is what the command prints and how it exits.
type dialogAnswer struct {
	text string
	ok   bool
}

func runDialog(kind dialogKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
			return errors.New("dialogs need an interactive terminal")
		}

		ctrl, opts, err := newDialog(cmd)
		if err != nil {
			return err
		}
		answer := showDialog(ctrl, kind, strings.Join(args, " "), opts)

		width, _ := cmd.Flags().GetInt("width")
		markdown, _ := cmd.Flags().GetBool("markdown")
		m := tui.NewDialogModel(ctrl, tui.WithMarkdown(markdown), tui.WithWidth(width))

		// Draw on stderr so stdout carries only the answer.
		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithOutput(os.Stderr),
			tea.WithContext(cmd.Context()),
		)
		unsubscribe := ctrl.Subscribe(tui.Forward(p))
		_, runErr := p.Run()
		unsubscribe()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		// Interrupted programs leave the dialog open; settle it as cancelled.
		if ctrl.Snapshot().State != dialog.StateClosed {
			if _, err := ctrl.Close(nil).Wait(ctx); err != nil {
				return err
			}
		}
		if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
			return fmt.Errorf("run dialog: %w", runErr)
		}

		res, err := answer(ctx)
		if err != nil {
			return err
		}
		slog.Debug("dialog answered", "ok", res.ok)

		if res.text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.text)
		}
		if !res.ok {
			return &exitError{code: 1}
		}
		return nil
	}
}

// newDialog builds a controller and show options from flags and config.
func newDialog(cmd *cobra.Command) (*dialog.Controller, []dialog.Option, error) {
	cfg, err := config.Resolve(getBaseDir())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	fs := cmd.Flags()
	delay, _ := fs.GetDuration("close-delay")
	if d, ok := cfg.Dialog.CloseDelay(); ok && !fs.Changed("close-delay") {
		delay = d
	}

	reg := dialog.NewRegistry(dialog.WithCloseDelay(delay), dialog.WithLogger(slog.Default()))
	ctrl := reg.Default()

	title, _ := fs.GetString("title")
	dismissable, _ := fs.GetBool("dismissable")
	closeButton, _ := fs.GetBool("close-button")

	opts := []dialog.Option{
		dialog.WithTitle(title),
		dialog.WithCloseButton(closeButton),
	}
	if dismissable {
		opts = append(opts, dialog.WithKeyboard(true), dialog.WithBackdrop(true))
	}
	return ctrl, opts, nil
}

// showDialog opens the dialog of kind and returns a function that waits for
// the answer.
func showDialog(ctrl *dialog.Controller, kind dialogKind, message string, opts []dialog.Option) func(context.Context) (dialogAnswer, error) {
	switch kind {
	case kindConfirm:
		f := ctrl.Confirm(message, opts...)
		return func(ctx context.Context) (dialogAnswer, error) {
			ok, err := f.Wait(ctx)
			return dialogAnswer{ok: ok}, err
		}
	case kindPrompt:
		f := ctrl.Prompt(message, opts...)
		return func(ctx context.Context) (dialogAnswer, error) {
			res, err := f.Wait(ctx)
			return dialogAnswer{text: res.Value, ok: res.OK}, err
		}
	default:
		f := ctrl.Alert(message, opts...)
		return func(ctx context.Context) (dialogAnswer, error) {
			_, err := f.Wait(ctx)
			return dialogAnswer{ok: true}, err
		}
	}
}
