// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/defs"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/state"
	"tower-siege/internal/system"
)

// Options — настройки сессии
type Options struct {
	StartingMoney float64 // math.Inf(1) — бесконечные деньги
	MapName       string
	Maps          []defs.MapDefinition // nil — встроенные пресеты
}

// DefaultOptions: бесконечные деньги и карта по умолчанию
func DefaultOptions() Options {
	return Options{
		StartingMoney: math.Inf(1),
		MapName:       config.DefaultMapName,
	}
}

type subscription struct {
	eventType event.EventType
	listener  event.Listener
}

// Game — сессия игры: владеет хранилищем, системами и состоянием сессии.
type Game struct {
	Store              *entity.Store
	EventDispatcher    *event.Dispatcher
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MeteorSystem       *system.MeteorSystem
	WaveSystem         *system.WaveSystem
	AbilitySystem      *system.AbilitySystem
	ChampionSystem     *system.ChampionSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem

	maps          []defs.MapDefinition
	selectedMap   int // применяется при следующем сбросе
	startingMoney float64
	session       *state.StateMachine
	external      []subscription
}

// NewGame создаёт сессию в главном меню с выбранной картой.
func NewGame(opts Options) (*Game, error) {
	maps := opts.Maps
	if maps == nil {
		var err error
		maps, err = defs.DefaultMaps()
		if err != nil {
			return nil, fmt.Errorf("failed to load default maps: %w", err)
		}
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("no maps available")
	}

	selected := 0
	if opts.MapName != "" {
		idx, ok := defs.FindMap(maps, opts.MapName)
		if !ok {
			return nil, fmt.Errorf("unknown map %q", opts.MapName)
		}
		selected = idx
	}

	g := &Game{
		maps:          maps,
		selectedMap:   selected,
		startingMoney: opts.StartingMoney,
		session:       state.NewStateMachine(state.MainMenu),
	}
	g.session.OnChange(func(from, to state.Phase) {
		log.Printf("Session: %v -> %v", from, to)
	})
	g.reset()
	return g, nil
}

// reset пересоздаёт хранилище и системы для выбранной карты.
func (g *Game) reset() {
	m := &g.maps[g.selectedMap]
	store := entity.NewStore(m, g.startingMoney)
	dispatcher := event.NewDispatcher()

	g.Store = store
	g.EventDispatcher = dispatcher
	g.MovementSystem = system.NewMovementSystem(store, dispatcher)
	g.CombatSystem = system.NewCombatSystem(store)
	g.ProjectileSystem = system.NewProjectileSystem(store, dispatcher)
	g.MeteorSystem = system.NewMeteorSystem(store, dispatcher)
	g.WaveSystem = system.NewWaveSystem(store, dispatcher)
	g.ChampionSystem = system.NewChampionSystem(store, dispatcher)
	g.AbilitySystem = system.NewAbilitySystem(store, dispatcher, g.ChampionSystem)
	g.PlayerSystem = system.NewPlayerSystem(store, dispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(store)

	dispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)
	dispatcher.Subscribe(event.EnemyLeaked, g.PlayerSystem)
	dispatcher.Subscribe(event.MeteorImpact, g.VisualEffectSystem)
	dispatcher.Subscribe(event.ChampionLanded, g.VisualEffectSystem)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.PlayerDefeated, listener)
	dispatcher.Subscribe(event.WaveStarted, listener)
	dispatcher.Subscribe(event.WaveCleared, listener)

	for _, sub := range g.external {
		dispatcher.Subscribe(sub.eventType, sub.listener)
	}

	log.Printf("Session reset: map %q, %d tower slots", m.Name, len(m.TowerSlots))
}

// Subscribe подписывает внешний слушатель. Подписка переживает сброс сессии.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.external = append(g.external, subscription{eventType: eventType, listener: listener})
	g.EventDispatcher.Subscribe(eventType, listener)
}

// Update продвигает симуляцию на deltaTime секунд. Ничего не делает вне PLAYING.
// Порядок стадий фиксирован: поздние стадии читают то, что записали ранние.
func (g *Game) Update(deltaTime float64) {
	if g.session.Current() != state.Playing || deltaTime < 0 {
		return
	}
	g.Store.GameTime += deltaTime

	g.AbilitySystem.Update(g.Store.GameTime, deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MeteorSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)

	g.Store.Sweep()
}

// ResetSession пересоздаёт карту, игрока, волны и сущности.
// startPlaying переводит сессию в PLAYING, иначе состояние не меняется.
func (g *Game) ResetSession(startPlaying bool) {
	g.reset()
	if startPlaying {
		g.session.Fire(state.Start)
	}
}

// SelectNextMap выбирает следующий пресет по кругу. Вступает в силу при сбросе.
func (g *Game) SelectNextMap() string {
	g.selectedMap = (g.selectedMap + 1) % len(g.maps)
	return g.maps[g.selectedMap].Name
}

// SelectedMapName — карта, которая будет загружена при сбросе
func (g *Game) SelectedMapName() string {
	return g.maps[g.selectedMap].Name
}

// StartGame запускает игру из меню или после поражения со свежей сессией.
func (g *Game) StartGame() bool {
	switch g.session.Current() {
	case state.Playing:
		return false
	case state.Paused:
		return g.session.Fire(state.Start)
	}
	g.ResetSession(true)
	return true
}

func (g *Game) TogglePause() bool {
	return g.session.Fire(state.TogglePause)
}

// ReturnToMenu выходит в главное меню
func (g *Game) ReturnToMenu() bool {
	return g.session.Fire(state.Menu)
}

func (g *Game) Phase() state.Phase {
	return g.session.Current()
}

// GameEventListener реагирует на события сессии
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDefeated:
		if l.game.session.Fire(state.Defeat) {
			log.Printf("Game over: wave %d, score %d", l.game.Store.Wave.Number, l.game.Store.Player.Score)
		}
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			log.Printf("Wave %d started: %d enemies", data.Number, data.Budget)
		}
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveData); ok {
			log.Printf("Wave %d cleared", data.Number)
		}
	}
}

// ChampionPhase — фаза чемпиона для рендера
func (g *Game) ChampionPhase() component.ChampionPhase {
	if c := g.Store.Champion; c != nil && c.Alive {
		return c.Phase
	}
	return component.ChampionInactive
}
