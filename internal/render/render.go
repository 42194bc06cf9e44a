package render

import (
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Title is the application header.
const Title = "Where in the world?"

// Renderer writes views to an output.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New creates a Renderer writing to w in the given mode.
func New(w io.Writer, dark bool) *Renderer {
	return &Renderer{w: w, styles: NewStyles(w, ThemeFor(dark))}
}

// SetDarkMode switches the theme.
func (r *Renderer) SetDarkMode(dark bool) {
	r.styles = NewStyles(r.w, ThemeFor(dark))
}

// Header writes the title bar with the current mode.
func (r *Renderer) Header() {
	mode := "Light Mode"
	if r.styles.Theme.IsDark {
		mode = "Dark Mode"
	}
	r.println(r.styles.Header.Render(Title + "  ·  " + mode))
}

// List writes one card per country.
func (r *Renderer) List(list domain.CountryList) {
	if len(list) == 0 {
		r.println(r.styles.Status.Render("No countries to show."))

		return
	}

	for i := range list {
		c := &list[i]
		body := strings.Join([]string{
			r.styles.Title.Render(c.Name),
			r.field("Population", Population(c.Population)),
			r.field("Region", OrNA(c.Region)),
			r.field("Capital", JoinOrNA(c.Capital)),
		}, "\n")
		r.println(r.styles.Card.Render(body))
	}
}

// Detail writes the full view of a country and its neighbours.
func (r *Renderer) Detail(d *domain.CountryDetail) {
	c := d.Country
	left := strings.Join([]string{
		r.field("Native Name", NativeName(c)),
		r.field("Population", Population(c.Population)),
		r.field("Region", OrNA(c.Region)),
		r.field("Sub Region", OrNA(c.Subregion)),
		r.field("Capital", JoinOrNA(c.Capital)),
	}, "\n")
	right := strings.Join([]string{
		r.field("Top Level Domain", JoinOrNA(c.TLD)),
		r.field("Currencies", Currencies(c)),
		r.field("Languages", Languages(c)),
	}, "\n")

	borders := r.styles.Value.Render(NoBorders)
	if len(d.BorderNames) > 0 {
		chips := make([]string, 0, len(d.BorderNames))
		for _, name := range d.BorderNames {
			chips = append(chips, r.styles.Chip.Render(name))
		}
		borders = strings.Join(chips, " ")
	}

	r.println(r.styles.Title.Render(c.Name))
	if c.FlagURL != "" {
		r.println(r.styles.Value.Render(c.FlagURL))
	}
	r.println(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	r.println(r.styles.Label.Render("Border Countries:") + " " + borders)
}

// Error writes err. Aggregation failures read as "no data".
func (r *Renderer) Error(err error) {
	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = err.Error()
	}
	if serrors.KindOf(err) == serrors.ErrUnavailable {
		msg = "No data: " + msg
	}
	r.println(r.styles.Error.Render(msg))
}

// Status writes an informational line.
func (r *Renderer) Status(format string, args ...any) {
	r.println(r.styles.Status.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) field(label, value string) string {
	return r.styles.Label.Render(label+":") + " " + r.styles.Value.Render(value)
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}
