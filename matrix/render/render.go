// SPDX-License-Identifier: MIT

// Package render draws matrices as heat maps with gonum.org/v1/plot.
//
// Cells are laid out as the matrix is printed: row 0 at the top, column 0 at
// the left. Any matrix.Expr can be drawn; lazy expressions are evaluated once
// per cell while plotting.
package render

import (
	"fmt"
	"io"
	"math"

	logging "github.com/ipfs/go-log/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/mpp/matrix"
)

var log = logging.Logger("mpp/render")

const (
	opHeatMap = "HeatMap"
	opSave    = "Save"
	opWrite   = "WriteTo"
)

func renderErrorf(tag string, err error) error {
	return fmt.Errorf("render.%s: %w", tag, err)
}

// Grid exposes a matrix expression as a plotter.GridXYZ.
type Grid[T matrix.Number] struct {
	e matrix.Expr[T]
}

// NewGrid wraps e.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - matrix.ErrInvalidDimensions for an empty matrix, which has no cells to draw.
func NewGrid[T matrix.Number](e matrix.Expr[T]) (*Grid[T], error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, err
	}
	if e.Rows() == 0 || e.Cols() == 0 {
		return nil, fmt.Errorf("%w: cannot draw a %dx%d matrix", matrix.ErrInvalidDimensions, e.Rows(), e.Cols())
	}

	return &Grid[T]{e: e}, nil
}

// Dims implements plotter.GridXYZ.
func (g *Grid[T]) Dims() (c, r int) { return g.e.Cols(), g.e.Rows() }

// Z implements plotter.GridXYZ. Grid row r is matrix row Rows()-1-r, since
// plot rows grow upwards.
func (g *Grid[T]) Z(c, r int) float64 { return float64(g.e.Elem(g.e.Rows()-1-r, c)) }

// X implements plotter.GridXYZ.
func (g *Grid[T]) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (g *Grid[T]) Y(r int) float64 { return float64(r) }

var _ plotter.GridXYZ = (*Grid[float64])(nil)

// HeatMap builds a plot of e with one colored cell per element.
func HeatMap[T matrix.Number](e matrix.Expr[T], opts ...Option) (*plot.Plot, error) {
	g, err := NewGrid(e)
	if err != nil {
		return nil, renderErrorf(opHeatMap, err)
	}
	o := gatherOptions(opts)

	h := plotter.NewHeatMap(g, o.palette)
	if math.IsNaN(h.Min) || math.IsInf(h.Min, 0) {
		h.Min = 0
	}
	// a constant matrix still needs a non-empty color range
	if !(h.Max > h.Min) {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(h)
	log.Debugf("heat map %dx%d, values in [%g, %g]", e.Rows(), e.Cols(), h.Min, h.Max)

	return p, nil
}

// Save draws e and writes the image to path. The format follows the file
// extension (png, svg, pdf, jpg, eps, tif).
func Save[T matrix.Number](e matrix.Expr[T], path string, opts ...Option) error {
	p, err := HeatMap(e, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts)
	if err = p.Save(o.width, o.height, path); err != nil {
		return renderErrorf(opSave, err)
	}

	return nil
}

// WriteTo draws e and writes the image in the given format ("png", "svg", ...) to w.
func WriteTo[T matrix.Number](e matrix.Expr[T], w io.Writer, format string, opts ...Option) (int64, error) {
	p, err := HeatMap(e, opts...)
	if err != nil {
		return 0, err
	}
	o := gatherOptions(opts)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return 0, renderErrorf(opWrite, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, renderErrorf(opWrite, err)
	}

	return n, nil
}

// defaultPalette is a 32-step heat palette.
func defaultPalette() palette.Palette { return palette.Heat(32, 1) }
