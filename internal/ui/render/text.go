package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// runeWidth caches ASCII widths; the renderer runs on a single goroutine so
// a plain array suffices.
func (r *Renderer) runeWidth(ru rune) int {
	if ru > 0 && ru < 128 {
		if w := r.asciiWidth[ru]; w != 0 {
			return w - 1
		}
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		r.asciiWidth[ru] = w + 1
		return w
	}

	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.runeWidth(ru)
	}
	return width
}

// truncateTextToWidth trims text to maxWidth terminal cells, replacing the
// cut tail with an ellipsis.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = '…'
	ellipsisWidth := r.runeWidth(ellipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	width := 0
	for _, ru := range text {
		rw := r.runeWidth(ru)
		if width+rw > available {
			break
		}
		builder.WriteRune(ru)
		width += rw
	}
	builder.WriteRune(ellipsis)
	return builder.String()
}

func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x-startX >= maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		w := r.runeWidth(ru)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}

// fillLine pads the rest of the row with the style's background.
func (r *Renderer) fillLine(fromX, y, toX int, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
