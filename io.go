package foil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadAirfoil reads an airfoil from a coordinate listing: an optional
// free-text label line followed by one "x y" pair per line. A clockwise
// loop, recognized by the last point lying above the first, is flipped to
// the counter-clockwise convention. The loop invariant of exactly one x
// direction reversal is enforced; see [ErrWinding].
func ReadAirfoil(r io.Reader) (*Airfoil, error) {
	var (
		name string
		pts  []Point
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			if line == 1 {
				name = text
				continue
			}
			return nil, fmt.Errorf("foil: line %d: expected 2 coordinates, got %d fields", line, len(fields))
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			if line == 1 {
				name = text
				continue
			}
			return nil, fmt.Errorf("foil: line %d: malformed coordinate pair %q", line, text)
		}
		pts = append(pts, Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("foil: reading coordinates: %w", err)
	}
	if err := checkLoop(pts); err != nil {
		return nil, err
	}
	// Clockwise input starts at the trailing edge on the lower surface;
	// flip it so the loop runs over the upper surface first.
	if pts[len(pts)-1].Y > pts[0].Y {
		pts = reversed(pts)
	}
	return NewAirfoil(name, pts), nil
}

// WriteAirfoil writes the airfoil in the format read by [ReadAirfoil], with
// coordinates at fixed 7-decimal precision. The label line is omitted when
// the name is empty.
func WriteAirfoil(w io.Writer, f *Airfoil) error {
	bw := bufio.NewWriter(w)
	if f.Name != "" {
		fmt.Fprintln(bw, f.Name)
	}
	for _, pt := range f.Points {
		fmt.Fprintf(bw, " %10.7f  %10.7f\n", pt.X, pt.Y)
	}
	return bw.Flush()
}

// LoadAirfoil reads an airfoil from the named coordinate file. If the file
// has no label line, the airfoil is named after the file.
func LoadAirfoil(path string) (*Airfoil, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("foil: %w", err)
	}
	defer file.Close()
	f, err := ReadAirfoil(file)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), ".dat")
	}
	return f, nil
}

// SaveAirfoil writes the airfoil to the named file in the format written by
// [WriteAirfoil].
func SaveAirfoil(path string, f *Airfoil) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("foil: %w", err)
	}
	if err := WriteAirfoil(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
