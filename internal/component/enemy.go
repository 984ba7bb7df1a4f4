package component

import (
	"tower-siege/internal/config"
	"tower-siege/internal/types"
)

// Enemy представляет вражескую сущность на пути.
type Enemy struct {
	ID        types.EntityID
	X, Z      float64 // позиция на плоскости земли
	Speed     float64
	Health    float64
	MaxHealth float64
	IsBoss    bool
	Radius    float64
	PathIdx   int  // индекс последней пройденной точки пути
	Alive     bool // false — убит или прорвался, удаляется в конце кадра
}

// NewEnemy создаёт врага в точке спавна.
func NewEnemy(id types.EntityID, x, z, speed, health float64, isBoss bool) *Enemy {
	radius := config.EnemyRadius
	if isBoss {
		radius = config.BossRadius
	}
	return &Enemy{
		ID:        id,
		X:         x,
		Z:         z,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		IsBoss:    isBoss,
		Radius:    radius,
		Alive:     true,
	}
}

// Y — высота центра, враг стоит на земле
func (e *Enemy) Y() float64 {
	return config.GroundY + e.Radius
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0 || !e.Alive
}
