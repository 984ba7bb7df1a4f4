// internal/system/projectile.go
package system

import (
	"math"

	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{store: store, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	alive := s.store.Projectiles[:0]
	for _, p := range s.store.Projectiles {
		if !p.Alive {
			continue
		}
		p.X += p.DX * p.Speed * deltaTime
		p.Y += p.DY * p.Speed * deltaTime
		p.Z += p.DZ * p.Speed * deltaTime
		p.Lifetime += deltaTime

		if p.Lifetime > p.MaxLifetime || outOfBounds(p) {
			p.Alive = false
			continue
		}

		if hit := s.findHit(p); hit != nil {
			if p.Explosive {
				DamageArea(s.store, s.eventDispatcher, p.X, p.Z, p.ExplosionRadius, p.Damage)
			} else {
				ApplyDamage(s.eventDispatcher, hit, p.Damage)
			}
			p.Alive = false
			continue
		}
		alive = append(alive, p)
	}
	clear(s.store.Projectiles[len(alive):])
	s.store.Projectiles = alive
}

// findHit возвращает ближайшего живого врага, которого касается снаряд.
// При равных дистанциях — первого по порядку спавна.
func (s *ProjectileSystem) findHit(p *component.Projectile) *component.Enemy {
	var hit *component.Enemy
	best := math.MaxFloat64
	for _, e := range s.store.Enemies {
		if !e.Alive {
			continue
		}
		d := utils.Dist2D(p.X, p.Z, e.X, e.Z)
		if d <= p.Radius+e.Radius && d < best {
			hit, best = e, d
		}
	}
	return hit
}

func outOfBounds(p *component.Projectile) bool {
	return math.Abs(p.X) > config.PlayfieldBound ||
		math.Abs(p.Z) > config.PlayfieldBound ||
		p.Y < config.PlayfieldFloor
}
