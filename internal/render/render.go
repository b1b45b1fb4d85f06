package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/bingosheets/internal/card"
	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/layout"
)

// Renderer consumes a planned page sequence. The page plan is the
// boundary: implementations own geometry, fonts and file formats, and
// never influence which card lands where.
type Renderer interface {
	RenderPages(pages []layout.Page) error
}

// Terminal renders the page plan as styled text
type Terminal struct {
	out io.Writer
	lip *lipgloss.Renderer
}

// NewTerminal creates a renderer using the color profile of the
// environment, degrading gracefully on dumb terminals.
func NewTerminal(out io.Writer) *Terminal {
	return NewTerminalWithProfile(out, termenv.EnvColorProfile())
}

// NewTerminalWithProfile creates a renderer with a fixed color profile.
// Tests and file output use termenv.Ascii for stable plain text.
func NewTerminalWithProfile(out io.Writer, profile termenv.Profile) *Terminal {
	return &Terminal{
		out: out,
		lip: lipgloss.NewRenderer(out, termenv.WithProfile(profile)),
	}
}

// RenderSheet renders a single card with its header letters
func (t *Terminal) RenderSheet(s layout.Sheet) string {
	free := s.FreeText
	if free == "" && s.Card.FreeCenter() {
		free = "FREE"
	}
	cellW := 4
	for _, n := range s.Card.Numbers() {
		if w := len(strconv.Itoa(n)) + 2; w > cellW {
			cellW = w
		}
	}
	if w := len(free) + 2; w > cellW {
		cellW = w
	}

	base := t.lip.NewStyle().Width(cellW).Align(lipgloss.Center)
	lines := make([]string, 0, card.Rows+1)

	var header strings.Builder
	for _, col := range card.Columns() {
		style := base.Bold(true)
		if c, ok := s.Colors[col]; ok && c != (colorscheme.RGB{}) {
			style = style.Foreground(lipgloss.Color(c.Hex()))
		}
		header.WriteString(style.Render(col.String()))
	}
	lines = append(lines, header.String())

	for row := 0; row < card.Rows; row++ {
		var b strings.Builder
		for _, col := range card.Columns() {
			if s.Card.IsFree(col, row) {
				b.WriteString(base.Bold(true).Render(free))
				continue
			}
			v, _ := s.Card.Value(col, row)
			b.WriteString(base.Render(strconv.Itoa(v)))
		}
		lines = append(lines, b.String())
	}

	return t.lip.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// RenderPages writes the full page plan, arranging each page's sheets
// into the slot grid its paper size implies.
func (t *Terminal) RenderPages(pages []layout.Page) error {
	titleStyle := t.lip.NewStyle().Bold(true)
	for _, page := range pages {
		title := fmt.Sprintf("Page %d/%d [%s] %d/%d slots filled",
			page.Number, len(pages), page.Paper.Name, len(page.Sheets), page.Capacity)
		if _, err := fmt.Fprintln(t.out, titleStyle.Render(title)); err != nil {
			return err
		}

		cols, _ := layout.Grid(page.Capacity, page.Paper.Width, page.Paper.Height)
		for start := 0; start < len(page.Sheets); start += cols {
			end := min(start+cols, len(page.Sheets))
			rendered := make([]string, 0, cols)
			for _, sheet := range page.Sheets[start:end] {
				rendered = append(rendered, t.RenderSheet(sheet))
			}
			row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
			if _, err := fmt.Fprintln(t.out, row); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(t.out); err != nil {
			return err
		}
	}
	return nil
}

// WritePlan renders the page plan to a file as plain text, or to stdout
// when path is "-". The file is only created here, after generation has
// fully succeeded, so an aborted run leaves nothing behind.
func WritePlan(path string, pages []layout.Page) error {
	if path == "-" {
		return NewTerminal(os.Stdout).RenderPages(pages)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := NewTerminalWithProfile(f, termenv.Ascii).RenderPages(pages); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
