package engine

// Command is one player action fed to the engine.
type Command int

const (
	NoOp Command = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Quit
)

func (c Command) String() string {
	switch c {
	case NoOp:
		return "noop"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case SoftDrop:
		return "soft-drop"
	case Rotate:
		return "rotate"
	case HardDrop:
		return "hard-drop"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// InputSource yields pending player commands without blocking. ok is false
// when nothing is waiting.
type InputSource interface {
	Poll() (cmd Command, ok bool)
}
