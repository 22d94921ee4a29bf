// internal/collision/router.go
package collision

import "go-treant-arena/internal/types"

// Handler вызывается на каждом шаге, пока хитбоксы пары пересекаются.
type Handler func(a, b types.EntityID)

// Pair: зарегистрированная пара сущностей и её обработчик.
type Pair struct {
	A, B    types.EntityID
	handler Handler
	removed bool
	hits    int
}

// Hits: сколько раз обработчик пары был вызван.
func (p *Pair) Hits() int { return p.hits }

// Router принимает уведомления о пересечениях от детектора и вызывает
// обработчик нужной пары. Уведомления о неактивных сущностях молча игнорируются.
type Router struct {
	pairs []*Pair
	alive func(types.EntityID) bool
}

// NewRouter создаёт роутер. alive сообщает, жива ли ещё сущность.
func NewRouter(alive func(types.EntityID) bool) *Router {
	return &Router{alive: alive}
}

// OnOverlap регистрирует обработчик для пары (a, b).
func (r *Router) OnOverlap(a, b types.EntityID, h Handler) *Pair {
	p := &Pair{A: a, B: b, handler: h}
	r.pairs = append(r.pairs, p)
	return p
}

// Remove снимает пару с учёта. Повторный вызов безопасен.
func (r *Router) Remove(p *Pair) {
	if p != nil {
		p.removed = true
	}
}

// Pairs возвращает снимок пар, которые ещё могут сработать.
func (r *Router) Pairs() []*Pair {
	out := make([]*Pair, 0, len(r.pairs))
	for _, p := range r.pairs {
		if r.live(p) {
			out = append(out, p)
		}
	}
	return out
}

// Dispatch вызывает обработчик пары, если обе сущности всё ещё активны.
// Возвращает true, если обработчик был вызван.
func (r *Router) Dispatch(p *Pair) bool {
	if !r.live(p) {
		return false
	}
	p.hits++
	p.handler(p.A, p.B)
	return true
}

// Prune удаляет снятые пары и пары с уничтоженными сущностями.
// Возвращает количество удалённых пар.
func (r *Router) Prune() int {
	kept := r.pairs[:0]
	for _, p := range r.pairs {
		if r.live(p) {
			kept = append(kept, p)
		}
	}
	removed := len(r.pairs) - len(kept)
	for i := len(kept); i < len(r.pairs); i++ {
		r.pairs[i] = nil
	}
	r.pairs = kept
	return removed
}

// Len: общее число зарегистрированных пар, включая ещё не вычищенные.
func (r *Router) Len() int {
	return len(r.pairs)
}

func (r *Router) live(p *Pair) bool {
	return !p.removed && r.alive(p.A) && r.alive(p.B)
}
