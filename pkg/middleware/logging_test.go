package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	render := Chain(Build, Logging(logger))

	if _, err := render(context.Background(), testSpec()); err != nil {
		t.Fatal(err)
	}
	if _, err := render(context.Background(), badSpec()); err == nil {
		t.Fatal("expected error")
	}

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=\"build complete\" component=render selector=ul.list elements=3",
		"level=WARN msg=\"build failed\" component=render selector=.no-tag code=E002",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q\n%s", want, out)
		}
	}
}

func TestLoggingMiddleware_NilLogger(t *testing.T) {
	render := Chain(Build, Logging(nil))
	if _, err := render(context.Background(), testSpec()); err != nil {
		t.Fatal(err)
	}
}
