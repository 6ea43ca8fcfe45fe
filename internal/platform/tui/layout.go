package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Rows reserved outside the play area: the frame border (2) and the help footer (1).
const (
	frameCols  = 2
	frameRows  = 2
	footerRows = 1
)

// Viewport is the cell rectangle the play field is drawn into, border excluded.
type Viewport struct {
	X, Y       int
	Cols, Rows int
}

// Empty reports whether there is nothing to draw into.
func (v Viewport) Empty() bool {
	return v.Cols <= 0 || v.Rows <= 0
}

// ComputeLayout fits the logical field into a cols x rows terminal keeping
// its aspect ratio, and centers it horizontally. A terminal smaller than the
// configured minimum yields a zero Field, which the game treats as not ready.
func ComputeLayout(cols, rows int, f config.FlappyField) (core.Field, Viewport) {
	if cols < f.MinCols || rows < f.MinRows || f.Width <= 0 || f.Height <= 0 {
		return core.Field{}, Viewport{}
	}

	availCols := cols - frameCols
	availRows := rows - frameRows - footerRows
	if availCols <= 0 || availRows <= 0 {
		return core.Field{}, Viewport{}
	}

	// Field aspect expressed in cells
	ratio := (f.Width / f.Height) * cellAspect

	vpRows := availRows
	vpCols := int(math.Round(float64(vpRows) * ratio))
	if vpCols > availCols {
		vpCols = availCols
		vpRows = core.Max(1, int(math.Round(float64(vpCols)/ratio)))
	}
	vpCols = core.Max(1, vpCols)

	vp := Viewport{
		X:    (cols-vpCols-frameCols)/2 + 1,
		Y:    1,
		Cols: vpCols,
		Rows: vpRows,
	}
	return core.Field{Width: f.Width, Height: f.Height}, vp
}
