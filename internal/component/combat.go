package component

// Health: компонент здоровья
type Health struct {
	Value int
	Max   int
}

// IsDepleted сообщает, что здоровье закончилось.
func (h *Health) IsDepleted() bool {
	return h.Value <= 0
}
