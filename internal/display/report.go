package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/wordcheck/internal/models"
)

// Phase markers printed between report sections
const (
	MarkerInit   = "init"
	MarkerStart  = "start"
	MarkerRegexp = "regexp"
	MarkerResult = "result"
)

// Report writes the report for one run. It is not safe for concurrent use.
type Report struct {
	writer      io.Writer
	colorOutput bool

	header *color.Color
	tag    *color.Color
	yes    *color.Color
	no     *color.Color
}

// NewReport creates a Report writing to w. Color escapes are emitted only
// when colorOutput is true.
func NewReport(w io.Writer, colorOutput bool) *Report {
	r := &Report{
		writer:      w,
		colorOutput: colorOutput,
		header:      color.New(color.FgCyan),
		tag:         color.New(color.FgYellow),
		yes:         color.New(color.FgGreen),
		no:          color.New(color.FgRed),
	}
	if colorOutput {
		// The global NoColor only reflects os.Stdout; the caller already decided.
		for _, c := range []*color.Color{r.header, r.tag, r.yes, r.no} {
			c.EnableColor()
		}
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShouldColor reports whether output to w gets color: it must be enabled,
// NO_COLOR must be unset, and w must be a terminal.
func ShouldColor(w io.Writer, enabled bool) bool {
	if !enabled {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return IsTerminal(w)
}

// Timestamp prints t as epoch milliseconds.
func (r *Report) Timestamp(t time.Time) {
	fmt.Fprintln(r.writer, t.UnixMilli())
}

// Marker prints a section marker such as "** init **".
func (r *Report) Marker(name string) {
	fmt.Fprintf(r.writer, "** %s **\n", name)
}

// FileBlock prints a blank line, the "<index>/<total>[<path>]" header, and
// one line per record. Files without records print nothing.
func (r *Report) FileBlock(index, total int, path string, records []models.MatchRecord) {
	if len(records) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.paint(r.header, fmt.Sprintf("%d/%d[%s]", index, total, path)))
	b.WriteString("\n")
	for _, rec := range records {
		if r.colorOutput {
			fmt.Fprintf(&b, "%s(%d) %s\n", r.tag.Sprintf("[%s]", rec.Word), rec.Line, rec.Text)
		} else {
			b.WriteString(rec.String())
			b.WriteString("\n")
		}
	}
	io.WriteString(r.writer, b.String())
}

// Words prints one "<word>: <true|false>" line per word, in order.
func (r *Report) Words(presence []models.WordPresence) {
	for _, w := range presence {
		flag := strconv.FormatBool(w.Found)
		if w.Found {
			flag = r.paint(r.yes, flag)
		} else {
			flag = r.paint(r.no, flag)
		}
		fmt.Fprintf(r.writer, "%s: %s\n", w.Word, flag)
	}
}

// Elapsed prints the run duration. Over 60 whole seconds it is shown in
// minutes ("1.5min"), otherwise in milliseconds ("42msec").
func (r *Report) Elapsed(d time.Duration) {
	fmt.Fprintln(r.writer, FormatElapsed(d))
}

// FormatElapsed returns the elapsed text printed by Elapsed.
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	seconds := ms / 1000
	if seconds > 60 {
		return formatMinutes(float64(seconds)/60.0) + "min"
	}
	return strconv.FormatInt(ms, 10) + "msec"
}

// formatMinutes prints the shortest representation of f that always keeps
// a fractional part, so 2 becomes "2.0".
func formatMinutes(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (r *Report) paint(c *color.Color, s string) string {
	if !r.colorOutput {
		return s
	}
	return c.Sprint(s)
}
