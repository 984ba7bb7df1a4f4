// internal/event/types.go
package event

import "tower-siege/internal/component"

const (
	EnemyKilled       EventType = "EnemyKilled"       // Data: *component.Enemy
	EnemyLeaked       EventType = "EnemyLeaked"       // Data: *component.Enemy
	PlayerDefeated    EventType = "PlayerDefeated"    // здоровье игрока дошло до нуля
	WaveStarted       EventType = "WaveStarted"       // Data: WaveData
	WaveCleared       EventType = "WaveCleared"       // Data: WaveData
	BossSpawned       EventType = "BossSpawned"       // Data: *component.Enemy
	MeteorImpact      EventType = "MeteorImpact"      // Data: ImpactData
	ChampionLanded    EventType = "ChampionLanded"    // Data: ImpactData
	ChampionDespawned EventType = "ChampionDespawned" // чемпион покинул поле
	BuffExpired       EventType = "BuffExpired"       // Data: Buff
)

// WaveData — номер волны и размер её бюджета
type WaveData struct {
	Number int
	Budget int
}

// ImpactData — точка удара по области
type ImpactData struct {
	X, Z   float64
	Radius float64
	Kills  int
}

// Buff — какой бафф истёк
type Buff string

const (
	BuffFastAttack Buff = "fast_attack"
	BuffExplosive  Buff = "explosive"
)

// KilledEnemy достаёт врага из события EnemyKilled/EnemyLeaked.
func KilledEnemy(e Event) (*component.Enemy, bool) {
	enemy, ok := e.Data.(*component.Enemy)
	return enemy, ok
}
