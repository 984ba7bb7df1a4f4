// internal/system/utils.go
package system

import (
	"tower-siege/internal/component"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/utils"
)

// ApplyDamage наносит урон врагу. Возвращает true, если этот удар его убил.
func ApplyDamage(d *event.Dispatcher, e *component.Enemy, damage float64) bool {
	if !e.Alive {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		return Kill(d, e)
	}
	return false
}

// Kill помечает врага мёртвым ровно один раз и объявляет награду.
func Kill(d *event.Dispatcher, e *component.Enemy) bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: e})
	return true
}

// DamageArea наносит урон всем живым врагам в радиусе от точки.
// Возвращает число убитых.
func DamageArea(store *entity.Store, d *event.Dispatcher, x, z, radius, damage float64) int {
	kills := 0
	for _, e := range store.Enemies {
		if !e.Alive {
			continue
		}
		if utils.Dist2D(x, z, e.X, e.Z) <= radius && ApplyDamage(d, e, damage) {
			kills++
		}
	}
	return kills
}
