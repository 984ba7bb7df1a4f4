// internal/component/champion.go
package component

import "tower-siege/internal/types"

// ChampionPhase — фаза поведения чемпиона
type ChampionPhase int

const (
	ChampionInactive ChampionPhase = iota
	ChampionFighting
	ChampionExitingWalk
	ChampionExitingCharge
	ChampionExitingJump
)

func (p ChampionPhase) String() string {
	switch p {
	case ChampionInactive:
		return "INACTIVE"
	case ChampionFighting:
		return "FIGHTING"
	case ChampionExitingWalk:
		return "EXITING_WALK"
	case ChampionExitingCharge:
		return "EXITING_CHARGE"
	case ChampionExitingJump:
		return "EXITING_JUMP"
	default:
		return "UNKNOWN"
	}
}

// ChampionAction — под-состояние внутри FIGHTING
type ChampionAction int

const (
	ChampionSeeking ChampionAction = iota
	ChampionCharging
	ChampionLeaping
)

func (a ChampionAction) String() string {
	switch a {
	case ChampionSeeking:
		return "SEEKING"
	case ChampionCharging:
		return "CHARGING"
	case ChampionLeaping:
		return "LEAPING"
	default:
		return "UNKNOWN"
	}
}

// Champion — временный союзник игрока.
type Champion struct {
	X, Y, Z         float64
	Radius          float64
	Health          float64
	Alive           bool
	Speed           float64
	DetectionRadius float64
	Yaw             float64
	Lifetime        float64 // оставшееся время жизни
	Phase           ChampionPhase
	Action          ChampionAction

	// Рывок и прыжок
	ChargeDuration float64
	ChargeTimer    float64
	LockedID       types.EntityID // 0 — нет цели
	LeapDuration   float64
	LeapHeight     float64
	LeapTimer      float64
	LeapStartX     float64
	LeapStartZ     float64
	LockX, LockZ   float64
	LandingDamage  float64
	LandingRadius  float64

	// Уход с поля
	ExitX, ExitZ  float64
	ExitStartX    float64
	ExitStartZ    float64
	ExitTimer     float64
	ManualControl bool // зарезервировано под ручное управление прыжком
}

// RemainingLifetime — время до начала ухода, не меньше нуля
func (c *Champion) RemainingLifetime() float64 {
	if c.Lifetime < 0 {
		return 0
	}
	return c.Lifetime
}
