package system

import (
	"testing"

	"tower-siege/internal/component"
	"tower-siege/internal/defs"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
)

// testWorld — хранилище с прямой дорогой от (-10, 0) до базы в (10, 0)
// и подписанной системой игрока.
type testWorld struct {
	store  *entity.Store
	d      *event.Dispatcher
	events map[event.EventType]int
}

func newTestWorld(t *testing.T, money float64) *testWorld {
	t.Helper()
	m := &defs.MapDefinition{
		Name:       "Test",
		Path:       []defs.Point{{X: -10, Z: 0}, {X: 0, Z: 0}, {X: 10, Z: 0}},
		TowerSlots: []defs.Point{{X: 0, Z: 2}, {X: 5, Z: 2}},
		PathWidth:  1,
		Ground:     [2]float64{30, 20},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("test map invalid: %v", err)
	}

	w := &testWorld{
		store:  entity.NewStore(m, money),
		d:      event.NewDispatcher(),
		events: make(map[event.EventType]int),
	}
	player := NewPlayerSystem(w.store, w.d)
	w.d.Subscribe(event.EnemyKilled, player)
	w.d.Subscribe(event.EnemyLeaked, player)

	count := event.ListenerFunc(func(e event.Event) { w.events[e.Type]++ })
	for _, et := range []event.EventType{
		event.EnemyKilled, event.EnemyLeaked, event.PlayerDefeated, event.BossSpawned,
		event.WaveStarted, event.WaveCleared, event.MeteorImpact, event.ChampionLanded,
		event.ChampionDespawned, event.BuffExpired,
	} {
		w.d.Subscribe(et, count)
	}
	return w
}

// spawnAt ставит неподвижного врага в точку
func (w *testWorld) spawnAt(x, z, health float64, boss bool) *component.Enemy {
	e := w.store.SpawnEnemy(0, health, boss)
	e.X, e.Z = x, z
	return e
}

func (w *testWorld) build(slot int) *component.Tower {
	s := w.store.Slots[slot]
	s.Occupied = true
	s.Tower = component.NewTower(s.X, s.Z)
	return s.Tower
}
