// Command foilplot normalizes and repanels airfoil coordinate files.
//
// It reads a coordinate file (or generates a NACA 4-digit section), runs
// the normalize/repanel pipeline, writes the canonical coordinates, and
// optionally renders the result to a PNG.
//
// Examples:
//
//	foilplot -in mh114.dat -n 161 -out mh114-smoothed.dat
//	foilplot -naca 0012 -n 101 -plot naca0012.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aerotools/foil"
)

func main() {
	var (
		in      = flag.String("in", "", "input coordinate file")
		naca    = flag.String("naca", "", "generate a NACA 4-digit section instead of reading a file")
		out     = flag.String("out", "", "write normalized coordinates to this file")
		plotOut = flag.String("plot", "", "render the airfoil to this PNG file")
		verbose = flag.Bool("v", false, "log pipeline warnings to stderr")
	)
	opts := foil.DefaultPanelOptions()
	flag.IntVar(&opts.NPoints, "n", opts.NPoints, "number of points after repaneling")
	flag.Float64Var(&opts.LEBunch, "le", opts.LEBunch, "leading-edge bunching factor (0..1)")
	flag.Float64Var(&opts.TEBunch, "te", opts.TEBunch, "trailing-edge bunching factor (0..1)")
	flag.Parse()

	if *verbose {
		foil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := run(*in, *naca, *out, *plotOut, opts); err != nil {
		fmt.Fprintln(os.Stderr, "foilplot:", err)
		os.Exit(1)
	}
}

func run(in, naca, out, plotOut string, opts foil.PanelOptions) error {
	var (
		f   *foil.Airfoil
		err error
	)
	switch {
	case in != "" && naca != "":
		return fmt.Errorf("-in and -naca are mutually exclusive")
	case in != "":
		f, err = foil.LoadAirfoil(in)
	case naca != "":
		f, err = foil.NACA4(naca, opts.NPoints)
	default:
		return fmt.Errorf("need -in or -naca (see -h)")
	}
	if err != nil {
		return err
	}

	if err := f.NormalizeAndRepanel(opts); err != nil {
		return err
	}

	if out != "" {
		if err := foil.SaveAirfoil(out, f); err != nil {
			return err
		}
	} else if plotOut == "" {
		if err := foil.WriteAirfoil(os.Stdout, f); err != nil {
			return err
		}
	}
	if plotOut != "" {
		return renderPNG(f, plotOut)
	}
	return nil
}

func renderPNG(f *foil.Airfoil, path string) error {
	top := make(plotter.XYs, len(f.Top.Points))
	for i, pt := range f.Top.Points {
		top[i].X = pt.X
		top[i].Y = pt.Y
	}
	bot := make(plotter.XYs, len(f.Bot.Points))
	for i, pt := range f.Bot.Points {
		bot[i].X = pt.X
		bot[i].Y = pt.Y
	}

	p := plot.New()
	p.Title.Text = f.Name
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"
	if err := plotutil.AddLinePoints(p, "upper", top, "lower", bot); err != nil {
		return err
	}
	return p.Save(24*vg.Centimeter, 6*vg.Centimeter, path)
}
