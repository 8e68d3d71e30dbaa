package kiss

import (
	"fmt"
	"math"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Sprites, drawn top-down.
var (
	principalBack = []string{
		"  ___  ",
		" (   ) ",
		" /|#|\\ ",
		"  | |  ",
	}
	principalFace = []string{
		"  ___  ",
		" (o_O) ",
		" /|#|\\ ",
		"  | |  ",
	}
	coupleApart = []string{
		" o     o ",
		"/|\\   /|\\",
		"/ \\   / \\",
	}
	coupleKiss = []string{
		"   o o   ",
		"  /|X|\\  ",
		"  / | \\  ",
	}
	bangSprite = []string{
		"██",
		"██",
		"██",
		"  ",
		"██",
	}
)

// Heart coordinates are in abstract units; this many units make one cell.
const (
	heartUnitsX = 6.0
	heartUnitsY = 4.0
)

const (
	WallChar  = '│'
	FloorChar = '─'
)

// Render draws the hallway scene for the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	w, h := dst.Width(), dst.Height()
	cx := w / 2
	floorY := h - 3
	principalY := max(h/4-2, 4)
	coupleY := max(floorY-len(coupleApart), principalY+len(principalBack)+1)

	drawHallway(dst, floorY)
	drawPrincipal(dst, cx, principalY, snap.Phase)
	drawCouple(dst, cx, coupleY, snap.Active)
	drawHearts(dst, cx, coupleY, snap.Hearts)
	drawHUD(dst, snap)

	if snap.Mode == ModePlaying && !snap.Active {
		drawHint(dst)
	}
	if snap.Mode == ModeGameOver && snap.Message != "" {
		drawGameOver(dst, snap)
	}
}

func drawHallway(dst *core.Screen, floorY int) {
	for x := 4; x < dst.Width(); x += 10 {
		for y := 1; y < floorY; y++ {
			dst.SetColored(x, y, WallChar, core.ColorDimGray)
		}
	}
	dst.DrawHLine(0, floorY, dst.Width(), FloorChar, core.ColorBrown)
	for y := floorY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░', core.ColorDimGray)
	}
}

func drawSprite(dst *core.Screen, cx, y int, rows []string, c core.Color) {
	for i, row := range rows {
		x := cx - len([]rune(row))/2
		for j, r := range []rune(row) {
			if r != ' ' {
				dst.SetColored(x+j, y+i, r, c)
			}
		}
	}
}

func drawPrincipal(dst *core.Screen, cx, y int, phase Phase) {
	switch phase {
	case PhaseDanger:
		drawSprite(dst, cx, y, principalFace, core.ColorBrightRed)
	case PhaseWarning:
		drawSprite(dst, cx, y, principalBack, core.ColorGray)
		drawSprite(dst, cx+8, y-1, bangSprite, core.ColorBrightRed)
	default:
		drawSprite(dst, cx, y, principalBack, core.ColorGray)
	}
}

func drawCouple(dst *core.Screen, cx, y int, kissing bool) {
	if kissing {
		drawSprite(dst, cx, y, coupleKiss, core.ColorPink)
		return
	}
	drawSprite(dst, cx, y, coupleApart, core.ColorWhite)
}

// heartGlyph picks a glyph and color for a heart's opacity. Fully faded
// hearts are not drawn.
func heartGlyph(opacity float64) (rune, core.Color, bool) {
	switch {
	case opacity > 0.66:
		return '♥', core.ColorBrightRed, true
	case opacity > 0.33:
		return '♥', core.ColorPink, true
	case opacity > 0:
		return '♡', core.ColorMagenta, true
	default:
		return 0, core.ColorDefault, false
	}
}

func drawHearts(dst *core.Screen, cx, y int, hearts []Heart) {
	for _, h := range hearts {
		r, c, ok := heartGlyph(h.Opacity())
		if !ok {
			continue
		}
		hx := cx + int(math.Round(h.X/heartUnitsX))
		hy := y + int(math.Round(h.Y/heartUnitsY))
		dst.SetColored(hx, hy, r, c)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	box := core.NewRect(1, 0, 18, 4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextColored(3, 1, fmt.Sprintf("SCORE: %d", snap.Score), core.ColorBrightYellow)
	dst.DrawTextColored(3, 2, fmt.Sprintf("BEST:  %d", snap.Best), core.ColorOrange)
}

func drawHint(dst *core.Screen) {
	lines := []string{"HOLD = KISS", "LET GO WHEN YOU SEE !"}
	for i, line := range lines {
		x := dst.Width() - len(line) - 2
		y := dst.Height() - len(lines) - 1 + i
		dst.DrawTextColored(x, y, line, core.ColorBrightWhite)
	}
}

func drawGameOver(dst *core.Screen, snap Snapshot) {
	best := fmt.Sprintf("BEST:  %d", snap.Best)
	if snap.NewBest {
		best += "  NEW!"
	}
	lines := []struct {
		text  string
		color core.Color
	}{
		{snap.Message, core.ColorBrightYellow},
		{"", core.ColorDefault},
		{fmt.Sprintf("SCORE: %d", snap.Score), core.ColorBrightWhite},
		{best, core.ColorOrange},
		{"", core.ColorDefault},
		{"Click or press R to try again", core.ColorGreen},
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l.text)))
	}
	boxW += 6
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, len(lines)+4)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len([]rune(l.text)))/2, box.Y+2+i, l.text, l.color)
	}
}
