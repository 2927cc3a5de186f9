package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a source document.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// HyperFlexError is a structured error with a stable code, an optional
// source location and a fix suggestion.
type HyperFlexError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (validation, runtime, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the document position where the error occurred.
	Location *Location

	// Context contains the surrounding source lines, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HyperFlexError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HyperFlexError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code, so sentinel values
// built with New match any error of that code.
func (e *HyperFlexError) Is(target error) bool {
	t, ok := target.(*HyperFlexError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithLocation adds a file location, reading context lines from disk.
func (e *HyperFlexError) WithLocation(file string, line, column int) *HyperFlexError {
	e.Location = &Location{File: file, Line: line, Column: column}
	if f, err := os.Open(file); err == nil {
		e.Context, e.ContextStart = readContextLines(f, line, 5)
		f.Close()
	}
	return e
}

// WithSource adds a location inside an in-memory document such as an HTTP
// request body or stdin.
func (e *HyperFlexError) WithSource(name string, src []byte, line, column int) *HyperFlexError {
	e.Location = &Location{File: name, Line: line, Column: column}
	e.Context, e.ContextStart = readContextLines(bytes.NewReader(src), line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HyperFlexError) WithSuggestion(s string) *HyperFlexError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *HyperFlexError) WithDetail(d string) *HyperFlexError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *HyperFlexError) WithDetailf(format string, args ...any) *HyperFlexError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *HyperFlexError) Wrap(err error) *HyperFlexError {
	e.Wrapped = err
	return e
}

// readContextLines returns up to contextSize lines centred on targetLine
// and the number of the first one.
func readContextLines(r io.Reader, targetLine, contextSize int) ([]string, int) {
	if targetLine <= 0 {
		return nil, 0
	}
	first := max(targetLine-contextSize/2, 1)
	last := targetLine + contextSize/2

	var lines []string
	scanner := bufio.NewScanner(r)
	for n := 1; n <= last && scanner.Scan(); n++ {
		if n >= first {
			lines = append(lines, scanner.Text())
		}
	}
	return lines, first
}

// New creates a HyperFlexError from a registered error code.
func New(code string) *HyperFlexError {
	template, ok := registry[code]
	if !ok {
		return &HyperFlexError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HyperFlexError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new HyperFlexError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HyperFlexError {
	return &HyperFlexError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a HyperFlexError.
func FromError(err error, code string) *HyperFlexError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HyperFlexError); ok {
		return he
	}
	return New(code).Wrap(err).WithDetail(err.Error())
}

// CodeOf returns the code of the first HyperFlexError in err's chain.
func CodeOf(err error) string {
	for err != nil {
		if he, ok := err.(*HyperFlexError); ok {
			return he.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
