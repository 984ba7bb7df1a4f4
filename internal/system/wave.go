// internal/system/wave.go
package system

import (
	"math"

	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
)

// WaveSystem спавнит врагов волнами с паузами между ними
type WaveSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{store: store, eventDispatcher: eventDispatcher}
}

// WaveBudget — сколько обычных врагов выходит в волне n
func WaveBudget(n int) int {
	return config.WaveBudgetBase + config.WaveBudgetPerWave*n
}

// SpawnInterval — интервал спавна в волне n
func SpawnInterval(n int) float64 {
	return math.Max(config.MinSpawnInterval, config.InitialSpawnInterval-config.SpawnIntervalDecrease*float64(n))
}

// EndOfWaveBosses — число боссов в конце волны n
func EndOfWaveBosses(n int) int {
	return (n + config.BossWavesPerExtra - 1) / config.BossWavesPerExtra
}

// BossHealth — здоровье босса в волне n
func BossHealth(n int) float64 {
	return config.BossBaseHealth + float64(n-1)*config.BossHealthPerWave
}

func (s *WaveSystem) Update(deltaTime float64) {
	w := s.store.Wave

	if w.Resting {
		w.TimeToNext -= deltaTime
		if w.TimeToNext <= 0 {
			w.Resting = false
			w.BossSpawned = false
			w.MidWaveBossSpawned = false
			w.ToSpawn = WaveBudget(w.Number)
			w.SpawnInterval = SpawnInterval(w.Number)
			w.TimeToNext = w.SpawnInterval
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.WaveStarted,
				Data: event.WaveData{Number: w.Number, Budget: w.ToSpawn},
			})
		}
		return
	}

	if w.ToSpawn > 0 {
		w.TimeToNext -= deltaTime
		if w.TimeToNext <= 0 {
			w.TimeToNext = w.SpawnInterval
			w.ToSpawn--
			s.spawnEnemy(w.Number)
			if w.ToSpawn <= w.Number && !w.MidWaveBossSpawned {
				w.MidWaveBossSpawned = true
				s.spawnBoss(w.Number)
			}
		}
		return
	}

	if !w.BossSpawned {
		w.BossSpawned = true
		for i := 0; i < EndOfWaveBosses(w.Number); i++ {
			s.spawnBoss(w.Number)
		}
		return
	}

	if !s.store.AnyEnemyAlive() {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WaveData{Number: w.Number},
		})
		w.Resting = true
		w.Number++
		w.TimeToNext = w.RestDuration
	}
}

func (s *WaveSystem) spawnEnemy(wave int) {
	n := float64(wave)
	s.store.SpawnEnemy(
		config.EnemyBaseSpeed+config.EnemySpeedScale*n,
		config.EnemyBaseHealth+config.EnemyHealthStep*n,
		false,
	)
}

func (s *WaveSystem) spawnBoss(wave int) {
	boss := s.store.SpawnEnemy(config.BossSpeed, BossHealth(wave), true)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: boss})
}
