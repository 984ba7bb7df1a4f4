// internal/component/wave.go
package component

// Wave — состояние планировщика волн
type Wave struct {
	Number             int     // Номер волны
	SpawnInterval      float64 // Интервал между спавнами (в секундах)
	TimeToNext         float64 // До следующего спавна или до конца отдыха
	ToSpawn            int     // Сколько обычных врагов осталось спавнить
	RestDuration       float64 // Пауза между волнами
	Resting            bool
	BossSpawned        bool // боссы конца волны уже выпущены
	MidWaveBossSpawned bool
}
