package component

// Npc: неподвижный персонаж, который здоровается при контакте с игроком.
type Npc struct {
	Greeting  string
	TextAlpha float64 // 0 = текст скрыт, 1 = показан
	Greeted   bool
}
