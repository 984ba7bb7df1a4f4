package system

import (
	"math"
	"testing"

	"tower-siege/internal/config"
	"tower-siege/internal/event"
)

func TestWaveFormulas(t *testing.T) {
	tests := []struct {
		wave       int
		budget     int
		interval   float64
		bosses     int
		bossHealth float64
	}{
		{1, 10, 1.15, 1, 400},
		{2, 12, 1.10, 1, 480},
		{3, 14, 1.05, 1, 560},
		{4, 16, 1.00, 2, 640},
		{7, 22, 0.85, 3, 880},
		{30, 68, 0.40, 10, 2720},
	}

	for _, tt := range tests {
		if got := WaveBudget(tt.wave); got != tt.budget {
			t.Errorf("WaveBudget(%d) = %d, want %d", tt.wave, got, tt.budget)
		}
		if got := SpawnInterval(tt.wave); math.Abs(got-tt.interval) > 1e-9 {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.wave, got, tt.interval)
		}
		if got := EndOfWaveBosses(tt.wave); got != tt.bosses {
			t.Errorf("EndOfWaveBosses(%d) = %d, want %d", tt.wave, got, tt.bosses)
		}
		if got := BossHealth(tt.wave); got != tt.bossHealth {
			t.Errorf("BossHealth(%d) = %v, want %v", tt.wave, got, tt.bossHealth)
		}
	}
}

func countEnemies(w *testWorld) (regular, bosses int) {
	for _, e := range w.store.Enemies {
		if e.IsBoss {
			bosses++
		} else {
			regular++
		}
	}
	return regular, bosses
}

func TestFirstWaveSpawnsBudgetAndBosses(t *testing.T) {
	w := newTestWorld(t, 0)
	waves := NewWaveSystem(w.store, w.d)

	waves.Update(config.FirstSpawnDelay - 0.5)
	if len(w.store.Enemies) != 0 {
		t.Fatal("spawned before the first delay elapsed")
	}

	for i := 0; i < 1000 && !w.store.Wave.BossSpawned; i++ {
		waves.Update(0.1)
	}

	regular, bosses := countEnemies(w)
	if regular != config.FirstWaveBudget {
		t.Errorf("regular enemies = %d, want %d", regular, config.FirstWaveBudget)
	}
	// один босс в середине волны и один в конце
	if bosses != 2 || w.events[event.BossSpawned] != 2 {
		t.Errorf("bosses = %d (events %d), want 2", bosses, w.events[event.BossSpawned])
	}
	first := w.store.Enemies[0]
	if math.Abs(first.Speed-1.25) > 1e-9 || first.Health != 70 {
		t.Errorf("wave 1 enemy speed %v health %v", first.Speed, first.Health)
	}
	spawn := w.store.Map.Spawn()
	if first.X != spawn.X || first.Z != spawn.Z {
		t.Errorf("enemy spawned at (%v, %v), want path start", first.X, first.Z)
	}

	// пока враги живы, волна не закрывается
	waves.Update(10)
	if w.store.Wave.Resting {
		t.Fatal("wave cleared with living enemies")
	}
}

func TestWaveClearRestAndNextWave(t *testing.T) {
	w := newTestWorld(t, 0)
	wave := w.store.Wave
	wave.ToSpawn = 0
	wave.BossSpawned = true
	waves := NewWaveSystem(w.store, w.d)

	waves.Update(0.1)
	if !wave.Resting || wave.Number != 2 || wave.TimeToNext != config.RestDuration {
		t.Fatalf("after clear: %+v", *wave)
	}
	if w.events[event.WaveCleared] != 1 {
		t.Errorf("cleared events = %d, want 1", w.events[event.WaveCleared])
	}

	var started event.WaveData
	w.d.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		started = e.Data.(event.WaveData)
	}))
	for i := 0; i < 100 && wave.Resting; i++ {
		waves.Update(0.1)
	}

	if wave.Resting {
		t.Fatal("rest never ended")
	}
	if wave.ToSpawn != WaveBudget(2) || math.Abs(wave.SpawnInterval-1.1) > 1e-9 {
		t.Errorf("wave 2: budget %d interval %v", wave.ToSpawn, wave.SpawnInterval)
	}
	if wave.BossSpawned || wave.MidWaveBossSpawned {
		t.Errorf("boss flags not reset")
	}
	if started.Number != 2 || started.Budget != 12 {
		t.Errorf("WaveStarted payload = %+v", started)
	}
	if len(w.store.Enemies) != 0 {
		t.Errorf("enemies spawned during rest")
	}
}

func TestEndOfWaveBossesSpawnOnce(t *testing.T) {
	w := newTestWorld(t, 0)
	wave := w.store.Wave
	wave.Number = 4
	wave.ToSpawn = 0
	waves := NewWaveSystem(w.store, w.d)

	waves.Update(0.1)
	waves.Update(0.1)

	_, bosses := countEnemies(w)
	if bosses != 2 {
		t.Fatalf("bosses = %d, want 2", bosses)
	}
	if h := w.store.Enemies[0].Health; h != 640 {
		t.Errorf("boss health = %v, want 640", h)
	}
	if w.store.Enemies[0].Speed != config.BossSpeed {
		t.Errorf("boss speed = %v", w.store.Enemies[0].Speed)
	}
}
