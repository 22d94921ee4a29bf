// internal/input/input.go
package input

// State: снимок управления за один кадр. Не зависит от движка:
// GameState заполняет его из клавиатуры, тесты: вручную.
type State struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// Axis возвращает направление движения по осям (-1, 0, 1).
func (s State) Axis() (dx, dy float64) {
	if s.Left {
		dx--
	}
	if s.Right {
		dx++
	}
	if s.Up {
		dy--
	}
	if s.Down {
		dy++
	}
	return dx, dy
}
