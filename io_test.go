package foil

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

const sampleFoil = `test section
 1.0000000   0.0010000
 0.5000000   0.0800000
 0.1000000   0.0500000
 0.0000000   0.0000000
 0.1000000  -0.0500000
 0.5000000  -0.0800000
 1.0000000  -0.0010000
`

func TestReadAirfoil(t *testing.T) {
	f, err := ReadAirfoil(strings.NewReader(sampleFoil))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "test section" {
		t.Errorf("name = %q, want %q", f.Name, "test section")
	}
	if len(f.Points) != 7 {
		t.Fatalf("got %d points, want 7", len(f.Points))
	}
	diff(t, Pt(1, 0.001), f.Points[0])
	diff(t, Pt(0, 0), f.Points[3])
}

func TestReadAirfoilNoLabel(t *testing.T) {
	body := sampleFoil[strings.IndexByte(sampleFoil, '\n')+1:]
	f, err := ReadAirfoil(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "" {
		t.Errorf("name = %q, want empty", f.Name)
	}
	if len(f.Points) != 7 {
		t.Fatalf("got %d points, want 7", len(f.Points))
	}
}

func TestReadAirfoilFlipsWinding(t *testing.T) {
	// The same loop traversed the other way round: the reader flips it so
	// the upper surface comes first.
	var sb strings.Builder
	sb.WriteString("flipped\n")
	lines := strings.Split(strings.TrimSpace(sampleFoil), "\n")[1:]
	for i := len(lines) - 1; i >= 0; i-- {
		sb.WriteString(lines[i])
		sb.WriteByte('\n')
	}
	f, err := ReadAirfoil(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if f.Points[0].Y <= f.Points[len(f.Points)-1].Y {
		t.Errorf("winding not flipped: first y %g, last y %g",
			f.Points[0].Y, f.Points[len(f.Points)-1].Y)
	}
}

func TestReadAirfoilErrors(t *testing.T) {
	if _, err := ReadAirfoil(strings.NewReader("label\n1 2\n3 4\n")); err == nil {
		t.Error("expected error for too few points")
	}
	if _, err := ReadAirfoil(strings.NewReader("label\n1 0\n0.5 x\n0 0\n0.5 -1\n1 0\n")); err == nil {
		t.Error("expected error for a malformed coordinate pair")
	}
	// The loop doubles back in x more than once.
	var err error
	if _, err = ReadAirfoil(strings.NewReader(
		"label\n1 0.1\n0 0\n1 -0.1\n0 -0.2\n1 -0.3\n")); !errors.Is(err, ErrWinding) {
		t.Errorf("got %v, want ErrWinding", err)
	}
}

func TestAirfoilRoundTrip(t *testing.T) {
	f := mustNACA(t, "2412", 121)
	var sb strings.Builder
	if err := WriteAirfoil(&sb, f); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAirfoil(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != f.Name {
		t.Errorf("name = %q, want %q", got.Name, f.Name)
	}
	if len(got.Points) != len(f.Points) {
		t.Fatalf("got %d points, want %d", len(got.Points), len(f.Points))
	}
	for i := range f.Points {
		if math.Abs(got.Points[i].X-f.Points[i].X) > 5e-8 ||
			math.Abs(got.Points[i].Y-f.Points[i].Y) > 5e-8 {
			t.Errorf("point %d: got %v, want %v within 7 decimals", i, got.Points[i], f.Points[i])
		}
	}
}

func TestLoadSaveAirfoil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "naca0012.dat")
	f := mustNACA(t, "0012", 101)
	if err := SaveAirfoil(path, f); err != nil {
		t.Fatal(err)
	}
	got, err := LoadAirfoil(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "NACA 0012" {
		t.Errorf("name = %q, want %q", got.Name, "NACA 0012")
	}
	if len(got.Points) != len(f.Points) {
		t.Errorf("got %d points, want %d", len(got.Points), len(f.Points))
	}
	if _, err := LoadAirfoil(filepath.Join(dir, "missing.dat")); err == nil {
		t.Error("expected error for a missing file")
	}
}
