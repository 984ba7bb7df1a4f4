package component

import "tower-siege/internal/config"

// Tower — башня, привязанная к слоту
type Tower struct {
	X, Y, Z          float64
	Range            float64
	BaseFireInterval float64
	Cooldown         float64 // время до следующего выстрела
	Damage           float64
	ProjectileSpeed  float64
	Yaw              float64 // угол поворота в радианах, 0 — вдоль +Z
	Active           bool
}

func NewTower(x, z float64) *Tower {
	return &Tower{
		X:                x,
		Y:                config.GroundY,
		Z:                z,
		Range:            config.TowerRange,
		BaseFireInterval: config.TowerFireInterval,
		Damage:           config.TowerDamage,
		ProjectileSpeed:  config.ProjectileSpeed,
		Active:           true,
	}
}

// EffectiveInterval учитывает бафф скорострельности
func (t *Tower) EffectiveInterval(fastAttack bool) float64 {
	if fastAttack {
		return t.BaseFireInterval / config.FastAttackMultiplier
	}
	return t.BaseFireInterval
}

// TowerSlot — место под башню, заданное картой
type TowerSlot struct {
	X, Z     float64
	Occupied bool
	Tower    *Tower
}
