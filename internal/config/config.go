// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	GroundY = 0.0

	DefaultMapName = "Mohammadpur"
)

// Игрок
const (
	PlayerHealth = 100
	TowerCost    = 75
	LeakDamage   = 10
)

// Враги
const (
	EnemyRadius     = 0.35
	EnemyBaseSpeed  = 1.2
	EnemySpeedScale = 0.05 // прибавка к скорости за номер волны
	EnemyBaseHealth = 60.0
	EnemyHealthStep = 10.0 // прибавка к здоровью за номер волны
	KillReward      = 15
	KillScore       = 10

	WaypointThreshold = 0.1 // дистанция, на которой точка пути считается достигнутой
	LeakThreshold     = 0.3 // дистанция до базы, на которой враг считается прорвавшимся
)

// Боссы
const (
	BossRadius        = 0.9
	BossBaseHealth    = 400.0
	BossHealthPerWave = 80.0
	BossSpeed         = 1.0
	BossReward        = 120
	BossScore         = 50
	BossWavesPerExtra = 3 // один дополнительный босс в конце волны на каждые 3 волны
)

// Волны
const (
	FirstWaveBudget       = 8
	FirstSpawnDelay       = 2.0
	InitialSpawnInterval  = 1.2
	MinSpawnInterval      = 0.4
	SpawnIntervalDecrease = 0.05
	WaveBudgetBase        = 8
	WaveBudgetPerWave     = 2
	RestDuration          = 4.0
)

// Башни и снаряды
const (
	TowerRange        = 6.0
	TowerFireInterval = 0.9
	TowerDamage       = 20.0
	MuzzleHeight      = 1.0
	MuzzleLift        = 0.1 // вертикальная составляющая направления выстрела

	ProjectileSpeed       = 8.0
	ProjectileRadius      = 0.12
	ProjectileMaxLifetime = 5.0
	ExplosionRadius       = 2.2
	PlayfieldBound        = 80.0 // |x|, |z| за этой границей — снаряд удаляется
	PlayfieldFloor        = GroundY - 1
)

// Способности
const (
	FastAttackCost       = 100
	ExplosiveCost        = 150
	MeteorCost           = 200
	ChampionCost         = 250
	FastAttackDuration   = 10.0
	ExplosiveDuration    = 10.0
	FastAttackMultiplier = 2.0
)

// Метеор
const (
	MeteorStartHeight = 10.0
	MeteorFallSpeed   = 14.0
	MeteorRadius      = 2.5
	MeteorAoeRadius   = 9999.0
	MeteorBossFactor  = 0.5 // доля максимального здоровья, которую теряет босс
)

// Чемпион
const (
	ChampionLifetime        = 20.0
	ChampionRadius          = 0.6
	ChampionHealth          = 500.0
	ChampionSpeed           = 4.0
	ChampionDetectionRadius = 5.0
	ChampionChargeDuration  = 0.6
	ChampionLeapDuration    = 0.7
	ChampionLeapHeight      = 2.5
	ChampionLandingDamage   = 120.0
	ChampionLandingRadius   = 2.5
	ChampionArriveThreshold = 0.1

	ChampionExitChargeDuration = 0.8
	ChampionExitJumpDuration   = 1.5
	ChampionExitJumpDistance   = 40.0
	ChampionExitJumpHeight     = 6.0
	ChampionExitGravity        = 9.8
	ChampionExitFloor          = -5.0

	ChampionManualLeapDuration = 0.45
	ChampionManualLeapDistance = 4.0
	ChampionManualLeapHeight   = 1.5
)

// Тряска экрана (только сигнал для рендера)
const (
	MeteorShakeIntensity   = 0.6
	MeteorShakeDuration    = 0.35
	ChampionShakeIntensity = 0.25
	ChampionShakeDuration  = 0.2
)

var (
	BackgroundColor = color.RGBA{178, 224, 255, 255}
	GroundColor     = color.RGBA{89, 166, 89, 255}
	PathColor       = color.RGBA{217, 204, 178, 255}
	BaseColor       = color.RGBA{77, 242, 77, 255}
	SlotColor       = color.RGBA{64, 64, 64, 255}
	TowerColor      = color.RGBA{204, 204, 230, 255}
	BarrelColor     = color.RGBA{242, 102, 77, 255}
	EnemyColor      = color.RGBA{51, 178, 230, 255}
	BossColor       = color.RGBA{153, 26, 230, 255}
	BulletColor     = color.RGBA{255, 153, 255, 255}
	ExplosiveColor  = color.RGBA{255, 153, 0, 255}
	MeteorColor     = color.RGBA{0, 0, 0, 255}
	ChampionColor   = color.RGBA{255, 215, 0, 255}
	TextColor       = color.RGBA{20, 20, 30, 255}
)
