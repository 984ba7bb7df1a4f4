// internal/system/combat.go
package system

import (
	"math"

	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/utils"
)

// CombatSystem наводит башни и превращает готовность к выстрелу в снаряды.
type CombatSystem struct {
	store *entity.Store
}

func NewCombatSystem(store *entity.Store) *CombatSystem {
	return &CombatSystem{store: store}
}

func (s *CombatSystem) Update(deltaTime float64) {
	abilities := s.store.Abilities
	for _, slot := range s.store.Slots {
		if !slot.Occupied || slot.Tower == nil || !slot.Tower.Active {
			continue
		}
		t := slot.Tower
		t.Cooldown -= deltaTime

		target := s.FindTarget(t)
		if target == nil {
			continue
		}

		// Поворачиваемся к цели каждый кадр, даже на перезарядке
		dx, dz := target.X-t.X, target.Z-t.Z
		t.Yaw = utils.Yaw(dx, dz)

		if t.Cooldown <= 0 {
			t.Cooldown = t.EffectiveInterval(abilities.FastAttackActive)
			s.fire(t, dx, dz, abilities.ExplosiveActive)
		}
	}
}

// FindTarget возвращает ближайшего живого врага, если он в радиусе башни.
// При равных дистанциях берётся первый по порядку спавна.
func (s *CombatSystem) FindTarget(t *component.Tower) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	for _, e := range s.store.Enemies {
		if !e.Alive {
			continue
		}
		d := utils.Dist2D(t.X, t.Z, e.X, e.Z)
		if d < minDistance {
			minDistance = d
			nearest = e
		}
	}
	if nearest == nil || minDistance > t.Range {
		return nil
	}
	return nearest
}

func (s *CombatSystem) fire(t *component.Tower, dx, dz float64, explosive bool) {
	dirX, dirZ := utils.Normalize2D(dx, dz)
	proj := &component.Projectile{
		X:           t.X,
		Y:           t.Y + config.MuzzleHeight,
		Z:           t.Z,
		DX:          dirX,
		DY:          config.MuzzleLift,
		DZ:          dirZ,
		Speed:       t.ProjectileSpeed,
		Damage:      t.Damage,
		Radius:      config.ProjectileRadius,
		MaxLifetime: config.ProjectileMaxLifetime,
		Explosive:   explosive,
		Alive:       true,
	}
	if explosive {
		proj.ExplosionRadius = config.ExplosionRadius
	}
	s.store.Projectiles = append(s.store.Projectiles, proj)
}
