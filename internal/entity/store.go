// internal/entity/store.go
package entity

import (
	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/defs"
	"tower-siege/internal/types"
)

// Store владеет всеми сущностями одной сессии.
// Мутируется только проходом Update и командами между кадрами.
type Store struct {
	GameTime    float64 // накопленное время симуляции
	NextID      types.EntityID
	Map         *defs.MapDefinition
	Enemies     []*component.Enemy
	Slots       []*component.TowerSlot
	Projectiles []*component.Projectile
	Meteors     []*component.Meteor
	Champion    *component.Champion // не больше одного
	Player      *component.Player
	Wave        *component.Wave
	Abilities   *component.Abilities
	Shake       *component.ScreenShake
}

func NewStore(m *defs.MapDefinition, startingMoney float64) *Store {
	slots := make([]*component.TowerSlot, 0, len(m.TowerSlots))
	for _, p := range m.TowerSlots {
		slots = append(slots, &component.TowerSlot{X: p.X, Z: p.Z})
	}
	return &Store{
		NextID: 1,
		Map:    m,
		Slots:  slots,
		Player: &component.Player{
			Health: config.PlayerHealth,
			Money:  startingMoney,
		},
		Wave: &component.Wave{
			Number:        1,
			SpawnInterval: config.InitialSpawnInterval,
			TimeToNext:    config.FirstSpawnDelay,
			ToSpawn:       config.FirstWaveBudget,
			RestDuration:  config.RestDuration,
		},
		Abilities: &component.Abilities{},
		Shake:     &component.ScreenShake{},
	}
}

func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// SpawnEnemy ставит нового врага в начало пути.
func (s *Store) SpawnEnemy(speed, health float64, isBoss bool) *component.Enemy {
	spawn := s.Map.Spawn()
	e := component.NewEnemy(s.NewEntity(), spawn.X, spawn.Z, speed, health, isBoss)
	s.Enemies = append(s.Enemies, e)
	return e
}

// EnemyByID ищет живого врага
func (s *Store) EnemyByID(id types.EntityID) *component.Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range s.Enemies {
		if e.ID == id && e.Alive {
			return e
		}
	}
	return nil
}

// AnyEnemyAlive — есть ли на поле живые враги
func (s *Store) AnyEnemyAlive() bool {
	for _, e := range s.Enemies {
		if e.Alive {
			return true
		}
	}
	return false
}

// LeadEnemy возвращает живого врага с наименьшим остатком пути до базы.
// filter может быть nil. При равенстве побеждает ранее заспавненный.
func (s *Store) LeadEnemy(filter func(e *component.Enemy) bool) *component.Enemy {
	var lead *component.Enemy
	best := 0.0
	for _, e := range s.Enemies {
		if !e.Alive {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		d := s.Map.RemainingPath(e.PathIdx, e.X, e.Z)
		if lead == nil || d < best {
			lead, best = e, d
		}
	}
	return lead
}

// Towers возвращает построенные башни в порядке слотов
func (s *Store) Towers() []*component.Tower {
	towers := make([]*component.Tower, 0, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.Occupied && slot.Tower != nil {
			towers = append(towers, slot.Tower)
		}
	}
	return towers
}

// ChampionAlive — жив ли чемпион
func (s *Store) ChampionAlive() bool {
	return s.Champion != nil && s.Champion.Alive
}

// SweepEnemies убирает убитых и прорвавшихся врагов.
func (s *Store) SweepEnemies() {
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.IsDead() {
			enemies = append(enemies, e)
		}
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies
}

// Sweep удаляет все мёртвые сущности. Вызывается в конце кадра,
// чтобы следующий кадр начинался без них.
func (s *Store) Sweep() {
	s.SweepEnemies()

	projectiles := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	clear(s.Projectiles[len(projectiles):])
	s.Projectiles = projectiles

	meteors := s.Meteors[:0]
	for _, m := range s.Meteors {
		if m.Alive {
			meteors = append(meteors, m)
		}
	}
	clear(s.Meteors[len(meteors):])
	s.Meteors = meteors

	if s.Champion != nil && !s.Champion.Alive {
		s.Champion = nil
	}
}
