// internal/system/movement.go
package system

import (
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/utils"
)

// MovementSystem ведёт врагов по точкам пути
type MovementSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{store: store, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	path := s.store.Map.Path
	last := len(path) - 1
	base := path[last]

	for _, e := range s.store.Enemies {
		if !e.Alive {
			continue
		}

		if e.PathIdx < last {
			target := path[e.PathIdx+1]
			dist := utils.Dist2D(e.X, e.Z, target.X, target.Z)
			moveDistance := e.Speed * deltaTime

			if dist <= moveDistance {
				// Не перелетаем точку пути на большом dt
				e.X, e.Z = target.X, target.Z
			} else {
				nx, nz := utils.Normalize2D(target.X-e.X, target.Z-e.Z)
				e.X += nx * moveDistance
				e.Z += nz * moveDistance
			}
			if utils.Dist2D(e.X, e.Z, target.X, target.Z) < config.WaypointThreshold {
				e.PathIdx++
			}
		}

		if e.PathIdx >= last && utils.Dist2D(e.X, e.Z, base.X, base.Z) < config.LeakThreshold {
			// Прорыв: без награды, урон игроку один раз
			e.Alive = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: e})
		}
	}

	s.store.SweepEnemies()
}
