// internal/component/player.go
package component

// Player хранит экономику игрока.
type Player struct {
	Health int
	Money  float64 // может быть +Inf
	Score  int
}

// CanAfford — проверка перед любой тратой, деньги не уходят в минус
func (p *Player) CanAfford(cost float64) bool {
	return p.Money >= cost
}

// Spend списывает деньги, если их хватает.
func (p *Player) Spend(cost float64) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Money -= cost
	return true
}

// TakeDamage уменьшает здоровье, не опуская ниже нуля.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}
