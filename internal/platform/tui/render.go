package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Snapshot flappy.Snapshot
	Viewport Viewport
	MinCols  int
	MinRows  int
	Notice   string // Shown on the game-over box, e.g. a save failure
}

// DrawFrame draws a snapshot into dst, scaling field units to cells.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	snap := f.Snapshot
	vp := f.Viewport
	if vp.Empty() || !snap.Field.Ready() {
		drawTooSmall(dst, f.MinCols, f.MinRows)
		return
	}

	dst.DrawBox(vp.X-1, vp.Y-1, vp.Cols+2, vp.Rows+2, core.ColorGray)

	sc := newScaler(snap.Field, vp)
	for _, p := range snap.Pipes {
		drawPipe(dst, sc, p)
	}

	switch snap.State {
	case flappy.StateIdle:
		drawMessage(dst, vp, core.ColorCyan, "FLAPPY", "", "Press SPACE to start")
	case flappy.StateRunning:
		drawBird(dst, sc, snap.Body, core.ColorYellow)
		drawScore(dst, vp, snap.Score)
	case flappy.StateEnded:
		drawBird(dst, sc, snap.Body, core.ColorBrightRed)
		drawScore(dst, vp, snap.Score)
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High Score: %d", int(snap.HighScore)),
			"",
			"SPACE to restart",
		}
		if f.Notice != "" {
			lines = append(lines, f.Notice)
		}
		drawMessage(dst, vp, core.ColorBrightRed, lines...)
	}
}

// scaler maps field units to screen cells inside a viewport.
type scaler struct {
	vp     Viewport
	sx, sy float64
}

func newScaler(field core.Field, vp Viewport) scaler {
	return scaler{
		vp: vp,
		sx: float64(vp.Cols) / field.Width,
		sy: float64(vp.Rows) / field.Height,
	}
}

// cells returns the half-open cell range [x0,x1) x [y0,y1) covered by r,
// clipped to the viewport and in screen coordinates.
func (s scaler) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * s.sx))
	x1 = int(math.Ceil(r.Right() * s.sx))
	y0 = int(math.Floor(r.Y * s.sy))
	y1 = int(math.Ceil(r.Bottom() * s.sy))

	x0, x1 = core.Clamp(x0, 0, s.vp.Cols), core.Clamp(x1, 0, s.vp.Cols)
	y0, y1 = core.Clamp(y0, 0, s.vp.Rows), core.Clamp(y1, 0, s.vp.Rows)
	return x0 + s.vp.X, y0 + s.vp.Y, x1 + s.vp.X, y1 + s.vp.Y
}

// drawPipe renders one pipe pair with caps facing the gap.
func drawPipe(dst *core.Screen, sc scaler, p flappy.PipePair) {
	x0, y0, x1, y1 := sc.cells(p.Top)
	if x1 > x0 && y1 > y0 {
		dst.FillArea(x0, y0, x1, y1-1, PipeChar, core.ColorGreen)
		dst.FillArea(x0, y1-1, x1, y1, PipeCapTop, core.ColorBrightGreen)
	}

	x0, y0, x1, y1 = sc.cells(p.Bottom)
	if x1 > x0 && y1 > y0 {
		dst.FillArea(x0, y0, x1, y0+1, PipeCapBottom, core.ColorBrightGreen)
		dst.FillArea(x0, y0+1, x1, y1, PipeChar, core.ColorGreen)
	}
}

// drawBird renders the body. It always covers at least one cell so it stays
// visible on small terminals.
func drawBird(dst *core.Screen, sc scaler, body core.Rect, c core.Color) {
	x0, y0, x1, y1 := sc.cells(body)
	maxX, maxY := sc.vp.X+sc.vp.Cols, sc.vp.Y+sc.vp.Rows
	if x1 <= x0 && x0 < maxX {
		x1 = x0 + 1
	}
	if y1 <= y0 && y0 < maxY {
		y1 = y0 + 1
	}

	dst.FillArea(x0, y0, x1, y1, BirdChar, c)
	if x1 > x0 && y1 > y0 {
		dst.SetColored(x1-1, y0, BirdBeakChar, c)
	}
}

// drawScore writes the display score centered on the top row of the field.
func drawScore(dst *core.Screen, vp Viewport, score int) {
	text := fmt.Sprintf(" %d ", score)
	dst.DrawTextColored(vp.X+(vp.Cols-len(text))/2, vp.Y, text, core.ColorWhite)
}

// drawMessage draws a box of centered lines in the middle of the viewport.
// The first line is the title.
func drawMessage(dst *core.Screen, vp Viewport, titleColor core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := vp.X + (vp.Cols-boxW)/2
	boxY := vp.Y + (vp.Rows-boxH)/2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}

	dst.FillArea(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorGray)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = titleColor
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, c)
	}
}

func drawTooSmall(dst *core.Screen, minCols, minRows int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", minCols, minRows), core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
