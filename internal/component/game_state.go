package component

// GameState: исход текущей сцены
type GameState int

const (
	PlayingState GameState = iota
	VictoryState           // Враг уничтожен
	DefeatState            // Игрок погиб
)

func (s GameState) String() string {
	switch s {
	case PlayingState:
		return "playing"
	case VictoryState:
		return "victory"
	case DefeatState:
		return "defeat"
	default:
		return "unknown"
	}
}
