package render

type layoutMetrics struct {
	parentStart  int
	parentWidth  int
	currentStart int
	currentWidth int
	previewStart int
	previewWidth int
	showParent   bool
	showPreview  bool
}

const (
	// Column ratios, in percent of the terminal width. The remainder on
	// the right stays blank so long names never crowd the screen edge.
	parentWidthPct  = 20
	currentWidthPct = 30
	previewWidthPct = 30

	separatorWidth = 1

	// Below these the side panes are dropped rather than squeezed into
	// unreadable slivers.
	minParentTerminalWidth  = 52
	minPreviewTerminalWidth = 40
)

func computeLayout(w int) layoutMetrics {
	if w < 0 {
		w = 0
	}

	m := layoutMetrics{
		showParent:  w >= minParentTerminalWidth,
		showPreview: w >= minPreviewTerminalWidth,
	}

	if m.showParent {
		m.parentWidth = w * parentWidthPct / 100
		m.currentStart = m.parentWidth + separatorWidth
	}

	m.currentWidth = w * currentWidthPct / 100
	if m.currentStart+m.currentWidth > w {
		m.currentWidth = w - m.currentStart
	}

	if m.showPreview {
		m.previewStart = m.currentStart + m.currentWidth + separatorWidth
		m.previewWidth = w * previewWidthPct / 100
		if m.previewStart+m.previewWidth > w {
			m.previewWidth = w - m.previewStart
		}
		if m.previewWidth <= 0 {
			m.showPreview = false
			m.previewWidth = 0
		}
	}

	if m.currentWidth < 0 {
		m.currentWidth = 0
	}
	return m
}
