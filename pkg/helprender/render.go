package helprender

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/MacroPower/nimbus/pkg/help"
)

type styles struct {
	section  lipgloss.Style
	command  lipgloss.Style
	required lipgloss.Style
}

var defaultStyles = styles{
	section:  lipgloss.NewStyle().Bold(true),
	command:  lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	required: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var plainStyles = styles{
	section:  lipgloss.NewStyle(),
	command:  lipgloss.NewStyle(),
	required: lipgloss.NewStyle(),
}

// Renderer writes help files to a single destination.
type Renderer struct {
	out    io.Writer
	styles styles
}

// New returns a [Renderer] writing to w. Styling is enabled only when w
// is a terminal.
func New(w io.Writer) *Renderer {
	s := plainStyles
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		s = defaultStyles
	}

	return &Renderer{out: w, styles: s}
}

// Render writes the full help text for f.
func (r *Renderer) Render(prog string, f *help.File) {
	b := &strings.Builder{}

	name := prog
	if f.Command != "" {
		name += " " + f.Command
	}

	fmt.Fprintf(b, "%s\n", r.styles.section.Render(titleCase(f.Type)))
	if f.ShortSummary != "" {
		fmt.Fprintf(b, "    %s : %s\n", r.styles.command.Render(name), f.ShortSummary)
	} else {
		fmt.Fprintf(b, "    %s\n", r.styles.command.Render(name))
	}

	if f.LongSummary != "" {
		fmt.Fprintf(b, "        %s\n", f.LongSummary)
	}

	for _, link := range f.Links {
		if link.Title != "" {
			fmt.Fprintf(b, "        %s: %s\n", link.Title, link.URL)
		} else {
			fmt.Fprintf(b, "        %s\n", link.URL)
		}
	}

	if len(f.Parameters) > 0 {
		fmt.Fprintf(b, "\n%s\n", r.styles.section.Render("Arguments"))
		for _, p := range f.Parameters {
			r.renderParameter(b, p)
		}
	}

	if len(f.Examples) > 0 {
		fmt.Fprintf(b, "\n%s\n", r.styles.section.Render("Examples"))
		for _, ex := range f.Examples {
			r.renderExample(b, ex)
		}
	}

	fmt.Fprint(r.out, b.String())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *Renderer) renderParameter(b *strings.Builder, p *help.Parameter) {
	line := "    " + p.Name
	if p.Required {
		line += " " + r.styles.required.Render("[Required]")
	}

	if p.ShortSummary != "" {
		line += " : " + p.ShortSummary
	}

	if p.DefaultValue != "" && p.DefaultValue != "false" {
		line += fmt.Sprintf("  Default: %s.", p.DefaultValue)
	}

	fmt.Fprintf(b, "%s\n", line)

	if p.LongSummary != "" {
		fmt.Fprintf(b, "        %s\n", p.LongSummary)
	}

	for _, vs := range p.ValueSources {
		if s, ok := vs.(string); ok {
			fmt.Fprintf(b, "        Values from: %s\n", s)
		}
	}
}

func (r *Renderer) renderExample(b *strings.Builder, ex help.Example) {
	summary := ex.Summary
	if summary == "" {
		summary = ex.Name
	}

	if summary != "" {
		fmt.Fprintf(b, "    %s\n", summary)
	}

	if ex.Command != "" {
		fmt.Fprintf(b, "        %s\n", r.styles.command.Render(ex.Command))
	}
}
