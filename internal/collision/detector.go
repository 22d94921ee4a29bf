// internal/collision/detector.go
package collision

import (
	"math"

	"go-treant-arena/internal/component"
	"go-treant-arena/internal/entity"
)

// Detector упрощённая подсистема столкновений. Проверяет AABB только
// для зарегистрированных пар и уведомляет роутер на каждом шаге, пока
// пересечение длится (level-triggered).
type Detector struct {
	ecs    *entity.ECS
	router *Router
}

func NewDetector(ecs *entity.ECS, router *Router) *Detector {
	return &Detector{ecs: ecs, router: router}
}

// Step проверяет все пары и возвращает число вызванных обработчиков.
// Обработчик может уничтожить сущность: следующие пары с ней роутер пропустит.
func (d *Detector) Step() int {
	notified := 0
	for _, p := range d.router.Pairs() {
		if !d.overlapping(p) {
			continue
		}
		if d.router.Dispatch(p) {
			notified++
		}
	}
	d.router.Prune()
	return notified
}

func (d *Detector) overlapping(p *Pair) bool {
	posA, okA := d.ecs.Positions[p.A]
	posB, okB := d.ecs.Positions[p.B]
	boxA, hasA := d.ecs.Hitboxes[p.A]
	boxB, hasB := d.ecs.Hitboxes[p.B]
	if !okA || !okB || !hasA || !hasB {
		return false
	}
	return Overlaps(posA, boxA, posB, boxB)
}

// Overlaps проверяет пересечение двух прямоугольников с центрами в a и b.
// Касание краями пересечением не считается.
func Overlaps(a *component.Position, boxA *component.Hitbox, b *component.Position, boxB *component.Hitbox) bool {
	return math.Abs(a.X-b.X)*2 < boxA.Width+boxB.Width &&
		math.Abs(a.Y-b.Y)*2 < boxA.Height+boxB.Height
}
