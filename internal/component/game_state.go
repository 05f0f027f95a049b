package component

// Mode - режим игры
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	default:
		return "menu"
	}
}
