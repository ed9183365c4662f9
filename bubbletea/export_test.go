package bubbletea

// Placeholder exports placeholder for testing.
const Placeholder = placeholder

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// HitTest exports the layout hit test for testing.
func HitTest(m Model, x, y int) (int, bool) {
	return m.layout.HitTest(x, y)
}

// GutterWidth returns the width of the handle gutter.
func GutterWidth(m Model) int {
	return m.layout.gutter
}
