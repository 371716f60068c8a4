package foil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	h := Logger().Handler()
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("default handler must be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Warn("test warning", "value", 42)
	if !strings.Contains(buf.String(), "test warning") {
		t.Errorf("log output %q does not contain the warning", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("nil logger must restore silence, got %q", buf.String())
	}
}

func TestWarningOnDegradedGeometry(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// A spline through a near-degenerate sliver gives the leading-edge
	// search a hard time from a trailing-edge midpoint sitting on the
	// curve; whether or not it converges, it must return without failing.
	s, err := FitSpline([]Point{
		Pt(1, 0), Pt(0.6, 1e-9), Pt(0.3, -1e-9), Pt(0, 0),
		Pt(0.3, 1e-9), Pt(0.6, -1e-9), Pt(1, 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	le := LocateLeadingEdge(s, Pt(1, 0), s.Params()[1])
	if le.Pos.IsNaN() {
		t.Fatal("degraded search returned NaN")
	}
}
