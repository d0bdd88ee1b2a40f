// Package render draws the three-pane browser onto a tcell screen.
package render

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/seldir/internal/fs"
	"github.com/kk-code-lab/seldir/internal/state"
)

// Renderer handles all UI rendering.
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	showIcons  bool
	asciiWidth [128]int
}

func NewRenderer(screen tcell.Screen, theme ColorTheme, showIcons bool) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     theme,
		showIcons: showIcons,
	}
}

// Render draws the entire UI from the navigator's panes.
func (r *Renderer) Render(nav *state.Navigator) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := computeLayout(w)

	r.drawHeader(nav, w)

	if layout.showParent {
		r.drawPane(nav.ParentPane(), layout.parentStart, layout.parentWidth, h)
	}
	r.drawPane(nav.CurrentPane(), layout.currentStart, layout.currentWidth, h)
	if layout.showPreview {
		r.drawPane(nav.PreviewPane(), layout.previewStart, layout.previewWidth, h)
	}

	r.drawStatusLine(nav, w, h)
	r.screen.Show()
}

// drawHeader renders the top bar: program name plus the current path with
// its last segment emphasized.
func (r *Renderer) drawHeader(nav *state.Navigator, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, "seldir ", headerStyle)

	currentPath := nav.CurrentDir()
	parent := filepath.Dir(currentPath)
	base := filepath.Base(currentPath)
	if parent != currentPath {
		prefix := strings.TrimSuffix(parent, string(filepath.Separator)) + string(filepath.Separator)
		prefix = r.truncateTextToWidth(prefix, w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, prefix, headerStyle)
	} else {
		base = currentPath
	}
	if endX < w {
		base = r.truncateTextToWidth(base, w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, base, headerStyle.Bold(true))
	}

	r.fillLine(endX, 0, w, headerStyle)
}

// drawPane renders one entry list into its column, scrolling so the cursor
// stays near the vertical center.
func (r *Renderer) drawPane(list *state.SelectableList, startX, width, h int) {
	if width <= 0 {
		return
	}

	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	maxRows := h - 2
	if maxRows < 1 {
		maxRows = 1
	}

	cursorIdx, hasCursor := list.Cursor()

	startIdx := 0
	if list.Len() > maxRows && hasCursor {
		startIdx = cursorIdx - maxRows/2
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx > list.Len()-maxRows {
			startIdx = list.Len() - maxRows
		}
	}

	endIdx := list.Len()
	if endIdx-startIdx > maxRows {
		endIdx = startIdx + maxRows
	}

	y := 1
	for i := startIdx; i < endIdx; i++ {
		if y >= h-1 {
			break
		}
		entry := list.At(i)

		rowStyle := baseStyle
		isCursor := hasCursor && i == cursorIdx
		switch {
		case isCursor:
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		case entry.IsDir:
			rowStyle = baseStyle.Foreground(r.theme.DirectoryFg)
		default:
			rowStyle = baseStyle.Foreground(r.theme.FileFg)
		}
		if entry.IsHidden() && !isCursor {
			rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
		}

		label := r.entryLabel(entry)
		label = r.truncateTextToWidth(label, width)
		endX := r.drawTextLine(startX, y, width, label, rowStyle)
		if isCursor {
			r.fillLine(endX, y, startX+width, rowStyle)
		}
		y++
	}
}

func (r *Renderer) entryLabel(entry fsutil.Entry) string {
	if r.showIcons {
		icon := "📄 "
		if entry.IsDir {
			icon = "📁 "
		}
		return icon + entry.Name
	}
	if entry.IsDir {
		return entry.Name + "/"
	}
	return entry.Name
}

// drawStatusLine renders the selected entry's full path at the bottom.
func (r *Renderer) drawStatusLine(nav *state.Navigator, w, h int) {
	if h < 2 {
		return
	}
	statusStyle := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)

	text := nav.CurrentDir()
	if sel, ok := nav.CurrentPane().Selected(); ok {
		text = sel.FullPath
	}
	text = r.truncateTextToWidth(text, w)
	endX := r.drawTextLine(0, h-1, w, text, statusStyle)
	r.fillLine(endX, h-1, w, statusStyle)
}
