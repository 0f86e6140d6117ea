package editor

// Mode represents the current editing mode.
type Mode int

const (
	ModeMove   Mode = iota // Drag corners/walls, pan, zoom
	ModeDraw               // Click out wall chains
	ModeDelete             // Remove hovered corners/walls
	ModeLength             // Inline wall-length text editing
)

// String returns the mode name for the status line.
func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "MOVE"
	case ModeDraw:
		return "DRAW"
	case ModeDelete:
		return "DELETE"
	case ModeLength:
		return "LENGTH"
	default:
		return "UNKNOWN"
	}
}
