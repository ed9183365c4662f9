package blocks

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values.
type Theme struct {
	Handle      int // Drag handle glyph
	Focus       int // Focused block marker
	Drag        int // Block being dragged
	Placeholder int // Empty block hint
	Muted       int // Status bar
	Error       int // Error messages
	Accent      int // Links, colored spans
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Handle:      4,
		Focus:       4,
		Drag:        6,
		Placeholder: 8,
		Muted:       8,
		Error:       1,
		Accent:      5,
	}
}
