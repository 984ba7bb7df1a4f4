package app

import (
	"io"
	"log"
	"math"
	"os"
	"testing"

	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/event"
	"tower-siege/internal/state"
	"tower-siege/internal/system"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestGame(t *testing.T, money float64) *Game {
	t.Helper()
	g, err := NewGame(Options{StartingMoney: money, MapName: "Default"})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if !g.StartGame() {
		t.Fatal("StartGame failed from the main menu")
	}
	return g
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(DefaultOptions())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Phase() != state.MainMenu {
		t.Errorf("phase = %v, want MAIN_MENU", g.Phase())
	}
	if g.SelectedMapName() != config.DefaultMapName || g.Store.Map.Name != config.DefaultMapName {
		t.Errorf("map = %q", g.Store.Map.Name)
	}
	if !math.IsInf(g.Store.Player.Money, 1) {
		t.Errorf("default money = %v, want +Inf", g.Store.Player.Money)
	}
	if g.Store.Player.Health != config.PlayerHealth || g.Store.Wave.Number != 1 {
		t.Errorf("unexpected initial player or wave state")
	}

	if _, err := NewGame(Options{MapName: "Atlantis"}); err == nil {
		t.Error("expected error for unknown map")
	}
}

func TestBuildTower(t *testing.T) {
	g := newTestGame(t, 1000)

	if !g.BuildTowerAtSlot(0) {
		t.Fatal("build failed")
	}
	if g.Store.Player.Money != 925 {
		t.Errorf("money = %v, want 925", g.Store.Player.Money)
	}
	if g.BuildTowerAtSlot(0) {
		t.Error("built twice in one slot")
	}
	if g.BuildTowerAtSlot(-1) || g.BuildTowerAtSlot(len(g.Store.Slots)) {
		t.Error("built outside the slot list")
	}
	if g.Store.Player.Money != 925 || len(g.Store.Towers()) != 1 {
		t.Errorf("rejected builds changed state: money %v towers %d", g.Store.Player.Money, len(g.Store.Towers()))
	}

	poor := newTestGame(t, config.TowerCost-1)
	if poor.BuildTowerAtSlot(0) || poor.Store.Slots[0].Occupied {
		t.Error("built without money")
	}
}

func TestUpdateOnlyWhilePlaying(t *testing.T) {
	g, err := NewGame(Options{StartingMoney: 0, MapName: "Default"})
	if err != nil {
		t.Fatal(err)
	}

	g.Update(1)
	if g.Store.GameTime != 0 {
		t.Fatal("simulation advanced in the main menu")
	}

	g.StartGame()
	g.Update(0.5)
	if g.Store.GameTime != 0.5 {
		t.Fatalf("game time = %v, want 0.5", g.Store.GameTime)
	}
	g.Update(-1)
	if g.Store.GameTime != 0.5 {
		t.Fatal("negative delta applied")
	}

	store := g.Store
	if !g.TogglePause() || g.Phase() != state.Paused {
		t.Fatalf("pause failed: %v", g.Phase())
	}
	g.Update(1)
	if g.Store.GameTime != 0.5 {
		t.Fatal("simulation advanced while paused")
	}

	if !g.StartGame() || g.Phase() != state.Playing || g.Store != store {
		t.Fatal("resume should continue the same session")
	}

	if !g.ReturnToMenu() || g.Phase() != state.MainMenu {
		t.Fatalf("return to menu failed: %v", g.Phase())
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 0)
	g.Store.Player.Health = config.LeakDamage

	base := g.Store.Map.Base()
	e := g.Store.SpawnEnemy(1, 60, false)
	e.X, e.Z = base.X, base.Z
	e.PathIdx = len(g.Store.Map.Path) - 1

	g.Update(0.016)
	if g.Phase() != state.GameOver {
		t.Fatalf("phase = %v, want GAME_OVER", g.Phase())
	}
	if g.Store.Player.Health != 0 {
		t.Errorf("health = %d, want 0", g.Store.Player.Health)
	}

	frozen := g.Snapshot()
	g.Update(1)
	if g.Snapshot() != frozen {
		t.Error("simulation advanced after game over")
	}

	if !g.StartGame() || g.Phase() != state.Playing {
		t.Fatal("restart from game over failed")
	}
	if g.Store.Player.Health != config.PlayerHealth || g.Store.GameTime != 0 {
		t.Error("restart did not produce a fresh session")
	}
}

func TestSelectNextMap(t *testing.T) {
	g, err := NewGame(Options{MapName: "Default"})
	if err != nil {
		t.Fatal(err)
	}

	if name := g.SelectNextMap(); name != "Mohammadpur" {
		t.Fatalf("next map = %q", name)
	}
	if g.Store.Map.Name != "Default" {
		t.Error("map switched before reset")
	}

	g.ResetSession(false)
	if g.Store.Map.Name != "Mohammadpur" || len(g.Store.Slots) != 10 {
		t.Errorf("after reset: map %q slots %d", g.Store.Map.Name, len(g.Store.Slots))
	}
	if g.Phase() != state.MainMenu {
		t.Errorf("reset without start changed phase to %v", g.Phase())
	}

	if name := g.SelectNextMap(); name != "Default" {
		t.Errorf("selection should wrap around, got %q", name)
	}
}

func TestExternalListenersSurviveReset(t *testing.T) {
	g := newTestGame(t, 0)
	kills := 0
	g.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))

	g.ResetSession(true)
	e := g.Store.SpawnEnemy(1, 60, false)
	system.Kill(g.EventDispatcher, e)

	if kills != 1 {
		t.Errorf("kills = %d, want 1", kills)
	}
	if g.Store.Player.Score != config.KillScore {
		t.Errorf("score = %d, want %d", g.Store.Player.Score, config.KillScore)
	}
}

func TestChampionThroughGame(t *testing.T) {
	g := newTestGame(t, math.Inf(1))

	if g.ChampionPhase() != component.ChampionInactive {
		t.Fatal("champion present before activation")
	}
	if !g.ActivateChampion() {
		t.Fatal("activation failed")
	}
	if g.ActivateChampion() {
		t.Error("second champion accepted")
	}
	if g.ChampionPhase() != component.ChampionFighting {
		t.Errorf("phase = %v", g.ChampionPhase())
	}
	if g.ChampionManualLeap(1, 0) {
		t.Error("manual leap accepted with manual control off")
	}
	if !g.SetChampionManualControl(true) || !g.ChampionManualLeap(1, 0) {
		t.Error("manual leap rejected")
	}

	for i := 0; i < 60*30 && g.ChampionPhase() != component.ChampionInactive; i++ {
		g.Update(1.0 / 60)
		if g.Phase() != state.Playing {
			t.Fatalf("session ended: %v", g.Phase())
		}
	}
	if g.ChampionPhase() != component.ChampionInactive || g.Store.Champion != nil {
		t.Fatal("champion did not leave within its lifetime")
	}
	if !g.ActivateChampion() {
		t.Error("could not summon a new champion after the first left")
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 1000)
		for i := 0; i < 4; i++ {
			g.BuildTowerAtSlot(i)
		}
		for frame := 0; frame < 60*60; frame++ {
			switch frame {
			case 600:
				g.ActivateExplosive()
			case 1200:
				g.ActivateMeteor()
			}
			g.Update(1.0 / 60)
		}
		return g.Snapshot()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("runs diverged:\n%+v\n%+v", first, second)
	}
	if first.GameTime == 0 || first.Score == 0 {
		t.Errorf("simulation did not progress: %+v", first)
	}
}
