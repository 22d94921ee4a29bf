package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Axis(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		dx, dy float64
	}{
		{"idle", State{}, 0, 0},
		{"left", State{Left: true}, -1, 0},
		{"down-right", State{Right: true, Down: true}, 1, 1},
		{"opposite keys cancel", State{Left: true, Right: true, Up: true}, 0, -1},
		{"fire does not move", State{Fire: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.state.Axis()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}
