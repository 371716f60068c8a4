package foil

import (
	"math"
	"testing"
)

func TestNACA4Loop(t *testing.T) {
	for _, code := range []string{"0012", "2412", "4415", "0008"} {
		f := mustNACA(t, code, 161)
		if len(f.Points) != 161 {
			t.Errorf("%s: got %d points, want 161", code, len(f.Points))
		}
		if err := checkLoop(f.Points); err != nil {
			t.Errorf("%s: %v", code, err)
		}
		if gap := f.TEGap(); gap != 0 {
			t.Errorf("%s: trailing-edge gap %g, want a closed trailing edge", code, gap)
		}
		if f.Points[f.minXIndex()].X > 1e-3 {
			t.Errorf("%s: no sample near the leading edge", code)
		}
	}
}

func TestNACA4Thickness(t *testing.T) {
	// A 0012 section is 12% thick; with the symmetric section the local
	// thickness is twice the surface height.
	f := mustNACA(t, "0012", 401)
	maxY := 0.0
	for _, pt := range f.Points {
		maxY = math.Max(maxY, pt.Y)
	}
	if math.Abs(2*maxY-0.12) > 1e-3 {
		t.Errorf("maximum thickness %g, want close to 0.12", 2*maxY)
	}
}

func TestNACA4Symmetry(t *testing.T) {
	f := mustNACA(t, "0012", 201)
	if !f.Mirror() {
		t.Error("zero-camber section should carry the mirror tag")
	}
	c := mustNACA(t, "2412", 201)
	if c.Mirror() {
		t.Error("cambered section must not carry the mirror tag")
	}
	// The symmetric cloud itself is mirror-symmetric index-wise.
	n := len(f.Points)
	for i := 0; i < n/2; i++ {
		a, b := f.Points[i], f.Points[n-1-i]
		if math.Abs(a.X-b.X) > 1e-12 || math.Abs(a.Y+b.Y) > 1e-12 {
			t.Fatalf("points %d and %d are not mirrored: %v vs %v", i, n-1-i, a, b)
		}
	}
}

func TestNACA4Errors(t *testing.T) {
	if _, err := NACA4("12", 101); err == nil {
		t.Error("expected error for a short code")
	}
	if _, err := NACA4("00x2", 101); err == nil {
		t.Error("expected error for a non-numeric code")
	}
	if _, err := NACA4("2012", 101); err == nil {
		t.Error("expected error for camber without camber position")
	}
	if _, err := NACA4("0012", 3); err == nil {
		t.Error("expected error for too few points")
	}
}
