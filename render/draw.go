package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes text starting at (x, y) and returns the column after it
// Cells outside the screen are skipped
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return x + runewidth.StringWidth(text)
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= width {
			screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
	return x
}

// DrawTextRight writes text so that it ends at column right (exclusive)
func DrawTextRight(screen tcell.Screen, right, y int, style tcell.Style, text string) {
	DrawText(screen, right-runewidth.StringWidth(text), y, style, text)
}

// DrawCentered writes text centred inside r on row y
func DrawCentered(screen tcell.Screen, r Rect, y int, style tcell.Style, text string) {
	w := runewidth.StringWidth(text)
	DrawText(screen, r.X+max((r.W-w)/2, 0), y, style, text)
}

// FillRect paints every cell of r with ch
func FillRect(screen tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawBox draws a single line border around r
func DrawBox(screen tcell.Screen, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
