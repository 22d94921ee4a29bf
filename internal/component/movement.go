// component/movement.go
package component

// Position: компонент позиции (центр сущности, в пикселях мира)
type Position struct {
	X, Y float64
}

// Velocity: компонент скорости, пиксели в секунду по каждой оси
type Velocity struct {
	X, Y float64
}

// IsZero сообщает, стоит ли сущность на месте.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Hitbox: прямоугольник столкновений вокруг Position.
type Hitbox struct {
	Width, Height float64
}
