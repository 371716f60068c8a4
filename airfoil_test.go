package foil

import (
	"testing"
)

func TestAirfoilFitCaching(t *testing.T) {
	f := mustNACA(t, "0012", 101)
	c1, err := f.Fit()
	if err != nil {
		t.Fatal(err)
	}
	c2, err := f.Fit()
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c2 {
		t.Error("Fit rebuilt the curve although the coordinates did not change")
	}
	if err := f.Repanel(DefaultPanelOptions()); err != nil {
		t.Fatal(err)
	}
	c3, err := f.Fit()
	if err != nil {
		t.Fatal(err)
	}
	if c3 == c1 {
		t.Error("Fit returned a stale curve after repaneling")
	}
}

func TestAirfoilOwnsItsPoints(t *testing.T) {
	pts := []Point{Pt(1, 0.01), Pt(0.5, 0.1), Pt(0, 0), Pt(0.5, -0.1), Pt(1, -0.01)}
	f := NewAirfoil("owned", pts)
	pts[0] = Pt(99, 99)
	if f.Points[0] != Pt(1, 0.01) {
		t.Error("airfoil aliases the caller's point slice")
	}
}

func TestTEGap(t *testing.T) {
	f := NewAirfoil("gap", []Point{Pt(1, 0.01), Pt(0.5, 0.1), Pt(0, 0), Pt(0.5, -0.1), Pt(1, -0.01)})
	diff(t, 0.02, f.TEGap(), approx(1e-15))
	closed := mustNACA(t, "0012", 61)
	if closed.TEGap() != 0 {
		t.Errorf("closed section has gap %g", closed.TEGap())
	}
}
