// internal/system/player_system.go
package system

import (
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
)

// PlayerSystem начисляет награды за убийства и снимает здоровье за прорывы.
type PlayerSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	defeated        bool
}

func NewPlayerSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{store: store, eventDispatcher: eventDispatcher}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	enemy, ok := event.KilledEnemy(e)
	if !ok {
		return
	}
	player := s.store.Player

	switch e.Type {
	case event.EnemyKilled:
		if enemy.IsBoss {
			player.Money += config.BossReward
			player.Score += config.BossScore
		} else {
			player.Money += config.KillReward
			player.Score += config.KillScore
		}
	case event.EnemyLeaked:
		player.TakeDamage(config.LeakDamage)
		if player.Health == 0 && !s.defeated {
			s.defeated = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated})
		}
	}
}
