// internal/system/visual_effect.go
package system

import (
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
)

// VisualEffectSystem ведёт сигнал тряски экрана для рендера.
type VisualEffectSystem struct {
	store *entity.Store
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(store *entity.Store) *VisualEffectSystem {
	return &VisualEffectSystem{store: store}
}

// OnEvent запрашивает тряску при ударах по площади.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MeteorImpact:
		s.store.Shake.Request(config.MeteorShakeIntensity, config.MeteorShakeDuration)
	case event.ChampionLanded:
		s.store.Shake.Request(config.ChampionShakeIntensity, config.ChampionShakeDuration)
	}
}

// Update гасит тряску со временем.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	shake := s.store.Shake
	if shake.Timer <= 0 {
		return
	}
	shake.Timer -= deltaTime
	if shake.Timer <= 0 {
		shake.Timer = 0
		shake.Intensity = 0
	}
}
