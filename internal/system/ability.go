// internal/system/ability.go
package system

import (
	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
)

// AbilitySystem ведёт таймеры баффов, метеоры и призыв чемпиона.
type AbilitySystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	champion        *ChampionSystem
}

func NewAbilitySystem(store *entity.Store, eventDispatcher *event.Dispatcher, champion *ChampionSystem) *AbilitySystem {
	return &AbilitySystem{
		store:           store,
		eventDispatcher: eventDispatcher,
		champion:        champion,
	}
}

// Update снимает истёкшие баффы и делает шаг чемпиона.
// now — накопленное время симуляции.
func (s *AbilitySystem) Update(now, deltaTime float64) {
	a := s.store.Abilities
	if a.FastAttackActive && now >= a.FastAttackEndsAt {
		a.FastAttackActive = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.BuffExpired, Data: event.BuffFastAttack})
	}
	if a.ExplosiveActive && now >= a.ExplosiveEndsAt {
		a.ExplosiveActive = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.BuffExpired, Data: event.BuffExplosive})
	}
	s.champion.Update(deltaTime)
}

// ActivateFastAttack удваивает скорострельность на время. Повторная активация продлевает бафф.
func (s *AbilitySystem) ActivateFastAttack(now float64) bool {
	if !s.store.Player.Spend(config.FastAttackCost) {
		return false
	}
	s.store.Abilities.FastAttackActive = true
	s.store.Abilities.FastAttackEndsAt = now + config.FastAttackDuration
	return true
}

// ActivateExplosive делает новые снаряды взрывными на время.
func (s *AbilitySystem) ActivateExplosive(now float64) bool {
	if !s.store.Player.Spend(config.ExplosiveCost) {
		return false
	}
	s.store.Abilities.ExplosiveActive = true
	s.store.Abilities.ExplosiveEndsAt = now + config.ExplosiveDuration
	return true
}

// ActivateMeteor роняет метеор на врага, ближайшего к базе,
// либо на середину пути, если врагов нет.
func (s *AbilitySystem) ActivateMeteor() bool {
	if !s.store.Player.Spend(config.MeteorCost) {
		return false
	}
	target := s.store.Map.MidWaypoint()
	if lead := s.store.LeadEnemy(nil); lead != nil {
		target.X, target.Z = lead.X, lead.Z
	}
	s.store.Meteors = append(s.store.Meteors, &component.Meteor{
		X:      target.X,
		Y:      config.MeteorStartHeight,
		Z:      target.Z,
		VY:     -config.MeteorFallSpeed,
		Radius: config.MeteorRadius,
		Aoe:    config.MeteorAoeRadius,
		Alive:  true,
	})
	return true
}

// ActivateChampion — см. ChampionSystem.Activate
func (s *AbilitySystem) ActivateChampion() bool {
	return s.champion.Activate()
}
