package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/uikit/internal/config"
	"github.com/marcus/uikit/internal/pagination"
	"github.com/marcus/uikit/pkg/tui"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Show the page window for a paginated listing",
	Long: `Print the page links a pagination control shows for the given position.

The current page is wrapped in brackets and gaps collapse to "...":

  $ uikit pages --total 10000 --page 500
  1 2 ... 497 498 499 [500] 501 502 503 ... 999 1000
  Showing 4991 to 5000 of 10000 results

Defaults for --per-page and --on-each-side come from .uikit/config.json
or the UIKIT_PER_PAGE and UIKIT_ON_EACH_SIDE environment variables.`,
	GroupID: "components",
	RunE:    runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)

	pagesCmd.Flags().IntP("total", "t", 0, "Total number of items")
	pagesCmd.Flags().IntP("per-page", "n", pagination.DefaultPerPage, "Items per page")
	pagesCmd.Flags().IntP("page", "p", 1, "Current page")
	pagesCmd.Flags().Int("on-each-side", pagination.DefaultOnEachSide, "Page links on each side of the current page")
	pagesCmd.Flags().BoolP("interactive", "i", false, "Browse pages interactively")
	pagesCmd.Flags().Bool("json", false, "Output the window as JSON")
}

// pagesOutput is the JSON shape of the pages command.
type pagesOutput struct {
	pagination.Window
	Elements []string `json:"elements"`
	Current  int      `json:"current_page"`
	LastPage int      `json:"last_page"`
	From     int      `json:"from"`
	To       int      `json:"to"`
	Total    int      `json:"total"`
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(getBaseDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	perPage := pagination.DefaultPerPage
	if cfg.Pagination.PerPage > 0 {
		perPage = cfg.Pagination.PerPage
	}
	onEachSide := pagination.DefaultOnEachSide
	if cfg.Pagination.OnEachSide != nil {
		onEachSide = *cfg.Pagination.OnEachSide
	}

	fs := cmd.Flags()
	total, _ := fs.GetInt("total")
	page, _ := fs.GetInt("page")

	p := &pagination.Paginator{
		Total:       total,
		PerPage:     intFlag(fs, "per-page", perPage),
		CurrentPage: page,
		OnEachSide:  intFlag(fs, "on-each-side", onEachSide),
		OnPageChange: func(page int) {
			slog.Debug("page changed", "page", page)
		},
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if interactive, _ := fs.GetBool("interactive"); interactive {
		return browsePages(cmd, p)
	}

	w, err := p.Window()
	if err != nil {
		return err
	}
	elems := pagination.Flatten(w, p.Page())

	out := cmd.OutOrStdout()
	if asJSON, _ := fs.GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pagesOutput{
			Window:   w,
			Elements: pagination.Strings(elems),
			Current:  p.Page(),
			LastPage: p.LastPage(),
			From:     p.From(),
			To:       p.To(),
			Total:    p.Total,
		})
	}

	if line := formatElements(elems); line != "" {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Showing %d to %d of %d results\n", p.From(), p.To(), p.Total)
	return nil
}

// formatElements renders elements as plain text, bracketing the current page.
func formatElements(elems []pagination.Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		if e.Active {
			parts[i] = "[" + e.String() + "]"
		} else {
			parts[i] = e.String()
		}
	}
	return strings.Join(parts, " ")
}

func browsePages(cmd *cobra.Command, p *pagination.Paginator) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("--interactive requires a terminal")
	}

	prog := tea.NewProgram(tui.NewPagerModel(p), tea.WithContext(cmd.Context()))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p.Page())
	return nil
}
