// Package render turns engine values into terminal text for the CLI: the
// mapping table, the observed-vs-English frequency chart and the trigram
// list. Styling uses lipgloss and degrades to plain text when the output
// is not a terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/frequency"
	"github.com/katalvlaran/recipro/mapping"
	"github.com/katalvlaran/recipro/ngram"
)

var (
	colorPair    = lipgloss.Color("#2CD7C7")
	colorEnglish = lipgloss.Color("#16858E")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

// Styles groups the lipgloss styles used across the CLI.
var Styles = struct {
	Title    lipgloss.Style
	Pair     lipgloss.Style
	Fixed    lipgloss.Style
	Observed lipgloss.Style
	English  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Box      lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPair),
	Pair:     lipgloss.NewStyle().Foreground(colorPair).Bold(true),
	Fixed:    lipgloss.NewStyle().Foreground(colorMuted),
	Observed: lipgloss.NewStyle().Foreground(colorPair),
	English:  lipgloss.NewStyle().Foreground(colorEnglish),
	Warning:  lipgloss.NewStyle().Foreground(colorWarning),
	Error:    lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorEnglish).
		Padding(0, 1),
}

// perRow is how many "A->B" cells share one line of the mapping table.
const perRow = 6

// Mapping renders m as rows of "A->B" cells, six per row. Paired letters
// are highlighted, fixed points muted.
func Mapping(m mapping.Mapping) string {
	var sb strings.Builder
	for i, l := range alphabet.Letters() {
		p := m.Partner(l)
		cell := fmt.Sprintf("%s->%s", l, p)
		if p == l {
			cell = Styles.Fixed.Render(cell)
		} else {
			cell = Styles.Pair.Render(cell)
		}
		if i%perRow == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString("  ")
		} else {
			sb.WriteString("   ")
		}
		sb.WriteString(cell)
	}

	return sb.String()
}

// Frequencies renders a horizontal bar chart comparing observed letter
// frequencies with the English reference, one line per letter A..Z.
// width is the bar length of the largest value; values below 1 are raised
// to 1.
func Frequencies(observed, english frequency.Table, width int) string {
	if width < 1 {
		width = 1
	}
	peak := 0.0
	for i := range observed {
		peak = math.Max(peak, math.Max(observed[i], english[i]))
	}

	var sb strings.Builder
	sb.WriteString(Styles.Observed.Render("█ cipher") + "  " + Styles.English.Render("░ english") + "\n")
	for _, l := range alphabet.Letters() {
		o, e := observed.Get(l), english.Get(l)
		fmt.Fprintf(&sb, "%s %s %5.2f%%\n", l, Styles.Observed.Render(bar(o, peak, width, "█")), 100*o)
		fmt.Fprintf(&sb, "  %s %5.2f%%\n", Styles.English.Render(bar(e, peak, width, "░")), 100*e)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// bar scales v against peak to at most width glyphs, padded to width.
func bar(v, peak float64, width int, glyph string) string {
	n := 0
	if peak > 0 {
		n = int(math.Round(v / peak * float64(width)))
	}

	return strings.Repeat(glyph, n) + strings.Repeat(" ", width-n)
}

// Trigrams renders a numbered trigram list.
func Trigrams(counts []ngram.Count) string {
	if len(counts) == 0 {
		return Styles.Warning.Render("  No trigrams found (need at least 3 letters).")
	}
	lines := make([]string, len(counts))
	for i, c := range counts {
		lines[i] = fmt.Sprintf("  %2d) %s -> %d", i+1, c.Gram, c.N)
	}

	return strings.Join(lines, "\n")
}

// Section renders a bracketed section heading such as "[Current Mapping]".
func Section(title string) string {
	return Styles.Title.Render("[" + title + "]")
}

// Check renders the outcome of a reciprocity check.
func Check(ok bool) string {
	if ok {
		return Styles.Pair.Render("Reciprocal mapping OK? true")
	}

	return Styles.Error.Render("Reciprocal mapping OK? false")
}

// Errorf renders an error line for the command loop.
func Errorf(format string, args ...any) string {
	return Styles.Error.Render("Error: " + fmt.Sprintf(format, args...))
}

// Boxed wraps s in a rounded border.
func Boxed(s string) string {
	return Styles.Box.Render(s)
}
