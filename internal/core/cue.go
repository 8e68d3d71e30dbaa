package core

// Cue identifies an audio cue the game asks the platform to play.
type Cue int

const (
	CueBackground Cue = iota // Looping background music
	CueKiss                  // Looping cue while the action is held
	CueWarning               // One-shot when the principal is about to turn
	CueAlert                 // One-shot when the principal is looking
	CueLose                  // One-shot on game over
	CueCount
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueBackground:
		return "background"
	case CueKiss:
		return "kiss"
	case CueWarning:
		return "warning"
	case CueAlert:
		return "alert"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Looping reports whether the cue plays until stopped.
func (c Cue) Looping() bool {
	return c == CueBackground || c == CueKiss
}
