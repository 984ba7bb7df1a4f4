// internal/system/meteor.go
package system

import (
	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/utils"
)

// MeteorSystem роняет метеоры и применяет удар по площади
type MeteorSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewMeteorSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *MeteorSystem {
	return &MeteorSystem{store: store, eventDispatcher: eventDispatcher}
}

func (s *MeteorSystem) Update(deltaTime float64) {
	remaining := s.store.Meteors[:0]
	for _, m := range s.store.Meteors {
		if !m.Alive {
			continue
		}
		m.Y += m.VY * deltaTime
		if m.Y > config.GroundY+m.Radius {
			remaining = append(remaining, m)
			continue
		}
		m.Y = config.GroundY + m.Radius
		m.Alive = false
		s.impact(m)
	}
	clear(s.store.Meteors[len(remaining):])
	s.store.Meteors = remaining
}

// impact: обычные враги погибают, боссы теряют половину максимального здоровья
func (s *MeteorSystem) impact(m *component.Meteor) {
	kills := 0
	for _, e := range s.store.Enemies {
		if !e.Alive || utils.Dist2D(m.X, m.Z, e.X, e.Z) > m.Aoe {
			continue
		}
		if e.IsBoss {
			if ApplyDamage(s.eventDispatcher, e, e.MaxHealth*config.MeteorBossFactor) {
				kills++
			}
			continue
		}
		if Kill(s.eventDispatcher, e) {
			kills++
		}
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MeteorImpact,
		Data: event.ImpactData{X: m.X, Z: m.Z, Radius: m.Aoe, Kills: kills},
	})
}
