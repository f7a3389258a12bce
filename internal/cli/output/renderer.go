// Package output renders command results as styled text, markdown or
// JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Renderer writes command output in the selected mode. Styling applies
// only in text mode; markdown and JSON stay plain.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. Unknown modes fall back to text.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeMarkdown, ModeJSON:
	default:
		mode = ModeText
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// Mode returns the active output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// IsJSON reports whether the renderer emits JSON.
func (r *Renderer) IsJSON() bool {
	return r.mode == ModeJSON
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Header writes a section heading.
func (r *Renderer) Header(text string) {
	if r.mode == ModeMarkdown {
		fmt.Fprintf(r.out, "## %s\n", text)
		return
	}
	fmt.Fprintln(r.out, headerStyle.Render(text))
}

// Success writes a positive status line.
func (r *Renderer) Success(text string) {
	if r.mode == ModeMarkdown {
		fmt.Fprintln(r.out, text)
		return
	}
	fmt.Fprintln(r.out, successStyle.Render(text))
}

// Severity styles a severity name for table cells. Markdown output
// leaves it unstyled.
func (r *Renderer) Severity(name string) string {
	if r.mode != ModeText {
		return name
	}
	switch name {
	case "error":
		return errorStyle.Render(name)
	case "warning":
		return warningStyle.Render(name)
	case "info":
		return infoStyle.Render(name)
	default:
		return name
	}
}

// Table renders a header and rows as a light-bordered table, or a
// markdown table in markdown mode.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.mode == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// JSON writes the value as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
