package app

import (
	"tower-siege/internal/component"
	"tower-siege/internal/state"
)

// Snapshot — сводка состояния для HUD и консольного вывода
type Snapshot struct {
	Phase            state.Phase
	MapName          string
	Health           int
	Money            float64
	Score            int
	Wave             int
	Resting          bool
	Enemies          int
	Projectiles      int
	Meteors          int
	Towers           int
	FastAttack       bool
	Explosive        bool
	ChampionPhase    component.ChampionPhase
	ChampionLifetime float64
	ShakeIntensity   float64
	ShakeTimer       float64
	GameTime         float64
}

func (g *Game) Snapshot() Snapshot {
	s := g.Store
	snap := Snapshot{
		Phase:          g.Phase(),
		MapName:        s.Map.Name,
		Health:         s.Player.Health,
		Money:          s.Player.Money,
		Score:          s.Player.Score,
		Wave:           s.Wave.Number,
		Resting:        s.Wave.Resting,
		Enemies:        len(s.Enemies),
		Projectiles:    len(s.Projectiles),
		Meteors:        len(s.Meteors),
		Towers:         len(s.Towers()),
		FastAttack:     s.Abilities.FastAttackActive,
		Explosive:      s.Abilities.ExplosiveActive,
		ChampionPhase:  g.ChampionPhase(),
		ShakeIntensity: s.Shake.Intensity,
		ShakeTimer:     s.Shake.Timer,
		GameTime:       s.GameTime,
	}
	if s.ChampionAlive() {
		snap.ChampionLifetime = s.Champion.RemainingLifetime()
	}
	return snap
}
