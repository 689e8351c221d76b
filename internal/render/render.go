// Package render prints contact lists for the non-interactive commands.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/contact"
)

// EmptyMessage is printed in text mode when there is nothing to list.
const EmptyMessage = "No contacts to display."

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Printer writes a contact list.
type Printer interface {
	Print(contacts []contact.Contact) error
}

// Options configures printer creation.
type Options struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	Format     Format    // Default: FormatText.
	ForcePlain bool      // Force plain text even if TTY.
}

// NewPrinter returns a printer for the requested format. Text output is a
// styled table when the writer is a TTY and one display line per contact
// otherwise.
func NewPrinter(opts Options) (Printer, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch opts.Format {
	case "", FormatText:
		if opts.ForcePlain || !isTTY(opts.Writer) {
			return &PlainPrinter{w: opts.Writer}, nil
		}
		return &TablePrinter{w: opts.Writer}, nil
	case FormatJSON:
		return &JSONPrinter{w: opts.Writer}, nil
	case FormatYAML:
		return &YAMLPrinter{w: opts.Writer}, nil
	default:
		return nil, fmt.Errorf("render: unknown format %q", opts.Format)
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainPrinter writes "name | phone | email" lines.
type PlainPrinter struct {
	w io.Writer
}

func (p *PlainPrinter) Print(contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(p.w, EmptyMessage)
		return err
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintln(p.w, c.String()); err != nil {
			return err
		}
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	cellStyle  = lipgloss.NewStyle().PaddingRight(2)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// TablePrinter writes an aligned, styled table for terminals.
type TablePrinter struct {
	w io.Writer
}

func (p *TablePrinter) Print(contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(p.w, mutedStyle.Render(EmptyMessage))
		return err
	}

	header := [3]string{"NAME", "PHONE", "EMAIL"}
	widths := [3]int{len(header[0]), len(header[1]), len(header[2])}
	for _, c := range contacts {
		for i, v := range [3]string{c.Name, c.Phone, c.Email} {
			widths[i] = max(widths[i], lipgloss.Width(v))
		}
	}

	row := func(cols [3]string, style lipgloss.Style) string {
		var b strings.Builder
		for i, v := range cols {
			b.WriteString(style.Render(cellStyle.Width(widths[i] + 2).Render(v)))
		}
		return strings.TrimRight(b.String(), " ")
	}

	if _, err := fmt.Fprintln(p.w, row(header, headerStyle)); err != nil {
		return err
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintln(p.w, row([3]string{c.Name, c.Phone, c.Email}, lipgloss.NewStyle())); err != nil {
			return err
		}
	}
	return nil
}

// JSONPrinter writes an indented JSON array.
type JSONPrinter struct {
	w io.Writer
}

func (p *JSONPrinter) Print(contacts []contact.Contact) error {
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("render: encoding json: %w", err)
	}
	return nil
}

// YAMLPrinter writes a YAML sequence.
type YAMLPrinter struct {
	w io.Writer
}

func (p *YAMLPrinter) Print(contacts []contact.Contact) error {
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("render: encoding yaml: %w", err)
	}
	return enc.Close()
}
