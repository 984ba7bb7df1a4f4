// internal/app/actions.go
package app

import (
	"tower-siege/internal/component"
	"tower-siege/internal/config"
)

// Команды игрока. Все синхронные: true — успех,
// при отказе состояние не меняется.

// BuildTowerAtSlot строит башню в слоте. Отказ: неверный индекс, занятый слот, мало денег.
func (g *Game) BuildTowerAtSlot(slotIdx int) bool {
	if slotIdx < 0 || slotIdx >= len(g.Store.Slots) {
		return false
	}
	slot := g.Store.Slots[slotIdx]
	if slot.Occupied || !g.Store.Player.Spend(config.TowerCost) {
		return false
	}
	slot.Occupied = true
	slot.Tower = component.NewTower(slot.X, slot.Z)
	return true
}

func (g *Game) ActivateFastAttack() bool {
	return g.AbilitySystem.ActivateFastAttack(g.Store.GameTime)
}

func (g *Game) ActivateExplosive() bool {
	return g.AbilitySystem.ActivateExplosive(g.Store.GameTime)
}

func (g *Game) ActivateMeteor() bool {
	return g.AbilitySystem.ActivateMeteor()
}

// ActivateChampion — отказ, если мало денег или чемпион уже на поле
func (g *Game) ActivateChampion() bool {
	return g.AbilitySystem.ActivateChampion()
}

// SetChampionManualControl включает ручной прыжок. По умолчанию выключен.
func (g *Game) SetChampionManualControl(enabled bool) bool {
	return g.ChampionSystem.SetManualControl(enabled)
}

// ChampionManualLeap — прыжок в направлении (dx, dz) при ручном управлении
func (g *Game) ChampionManualLeap(dx, dz float64) bool {
	return g.ChampionSystem.ManualLeap(dx, dz)
}
