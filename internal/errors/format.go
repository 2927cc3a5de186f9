package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI escape sequences.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

var colorEnabled = true

// DisableColors turns off ANSI colors in Format and PrintError.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI colors back on.
func EnableColors() { colorEnabled = true }

func paint(seq, text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return seq + text + ansiReset
}

func red(s string) string    { return paint(ansiRed, s) }
func green(s string) string  { return paint(ansiGreen, s) }
func yellow(s string) string { return paint(ansiYellow, s) }
func blue(s string) string   { return paint(ansiBlue, s) }
func cyan(s string) string   { return paint(ansiCyan, s) }
func gray(s string) string   { return paint(ansiGray, s) }
func bold(s string) string   { return paint(ansiBold, s) }

// detailWidth is where Format wraps the detail text.
const detailWidth = 72

// Format renders the error for a terminal: a header, the source snippet
// with a caret under the column, the detail, the hint and the doc link.
func (e *HyperFlexError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		fmt.Fprintf(&b, "%s %s %s\n\n", red(bold("error")), bold("["+e.Code+"]"), e.Message)
	} else {
		fmt.Fprintf(&b, "%s %s\n\n", red(bold("error:")), e.Message)
	}

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s %s\n", gray("-->"), cyan(e.Location.String()))
		e.writeSnippet(&b)
		b.WriteString("\n")
	}

	for _, line := range wrapText(e.Detail, detailWidth) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if e.Detail != "" {
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n", green("hint:"), e.Suggestion)
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s %s\n", gray("docs:"), blue(e.DocURL))
	}
	if e.Wrapped != nil && e.Wrapped.Error() != e.Detail {
		fmt.Fprintf(&b, "  %s %s\n", yellow("cause:"), e.Wrapped)
	}

	return b.String()
}

// writeSnippet writes the context lines with a gutter, marking the error line.
func (e *HyperFlexError) writeSnippet(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	last := e.ContextStart + len(e.Context) - 1
	width := len(fmt.Sprint(last))
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(b, "  %s %s\n", gutter, gray("|"))
	for i, text := range e.Context {
		n := e.ContextStart + i
		marker := " "
		if n == e.Location.Line {
			marker = red(">")
		}
		fmt.Fprintf(b, "%s %*d %s %s\n", marker, width, n, gray("|"), text)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "  %s %s %s%s\n", gutter, gray("|"), strings.Repeat(" ", e.Location.Column-1), red("^"))
		}
	}
}

// FormatCompact returns "file:line:col: CODE: message".
func (e *HyperFlexError) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	return strings.Join(append(parts, e.Message), ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	DocURL     string        `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a single-line JSON object.
func (e *HyperFlexError) FormatJSON() string {
	v := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if l := e.Location; l != nil {
		v.Location = &jsonLocation{File: l.File, Line: l.Line, Column: l.Column}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// wrapText breaks text into lines no longer than width where possible.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		cur := &lines[len(lines)-1]
		if len(*cur)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*cur += " " + w
	}
	return lines
}

// Fprint writes err to w, using Format for coded errors anywhere in the
// chain.
func Fprint(w io.Writer, err error) {
	for e := err; e != nil; {
		if he, ok := e.(*HyperFlexError); ok {
			fmt.Fprint(w, he.Format())
			return
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	fmt.Fprintf(w, "\n%s %s\n\n", red(bold("error:")), err)
}

// PrintError writes err to stderr.
func PrintError(err error) {
	Fprint(os.Stderr, err)
}
