// internal/system/champion.go
package system

import (
	"math"

	"tower-siege/internal/component"
	"tower-siege/internal/config"
	"tower-siege/internal/entity"
	"tower-siege/internal/event"
	"tower-siege/internal/utils"
)

// ChampionSystem ведёт чемпиона по фазам:
// FIGHTING (поиск → рывок → прыжок) → EXITING_WALK → EXITING_CHARGE → EXITING_JUMP → INACTIVE.
type ChampionSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	phases          map[component.ChampionPhase]func(c *component.Champion, deltaTime float64)
}

func NewChampionSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *ChampionSystem {
	s := &ChampionSystem{store: store, eventDispatcher: eventDispatcher}
	s.phases = map[component.ChampionPhase]func(*component.Champion, float64){
		component.ChampionFighting:      s.updateFighting,
		component.ChampionExitingWalk:   s.updateExitWalk,
		component.ChampionExitingCharge: s.updateExitCharge,
		component.ChampionExitingJump:   s.updateExitJump,
	}
	return s
}

// Activate призывает чемпиона к базе. Отказ, если он уже жив или не хватает денег.
func (s *ChampionSystem) Activate() bool {
	if s.store.ChampionAlive() {
		return false
	}
	if !s.store.Player.Spend(config.ChampionCost) {
		return false
	}

	base := s.store.Map.Base()
	spawn := s.store.Map.Spawn()
	s.store.Champion = &component.Champion{
		X:               base.X,
		Y:               groundLevel(config.ChampionRadius),
		Z:               base.Z,
		Radius:          config.ChampionRadius,
		Health:          config.ChampionHealth,
		Alive:           true,
		Speed:           config.ChampionSpeed,
		DetectionRadius: config.ChampionDetectionRadius,
		Yaw:             utils.Yaw(spawn.X-base.X, spawn.Z-base.Z),
		Lifetime:        config.ChampionLifetime,
		Phase:           component.ChampionFighting,
		Action:          component.ChampionSeeking,
		ChargeDuration:  config.ChampionChargeDuration,
		LeapDuration:    config.ChampionLeapDuration,
		LeapHeight:      config.ChampionLeapHeight,
		LandingDamage:   config.ChampionLandingDamage,
		LandingRadius:   config.ChampionLandingRadius,
	}
	return true
}

// SetManualControl включает ручное управление прыжком.
func (s *ChampionSystem) SetManualControl(enabled bool) bool {
	c := s.store.Champion
	if c == nil || !c.Alive {
		return false
	}
	c.ManualControl = enabled
	return true
}

// ManualLeap начинает короткий прыжок в направлении (dx, dz), сбрасывая рывок.
// Работает только в FIGHTING, при включённом ручном управлении и не в прыжке.
func (s *ChampionSystem) ManualLeap(dx, dz float64) bool {
	c := s.store.Champion
	if c == nil || !c.Alive || !c.ManualControl {
		return false
	}
	if c.Phase != component.ChampionFighting || c.Action == component.ChampionLeaping {
		return false
	}
	nx, nz := utils.Normalize2D(dx, dz)
	if nx == 0 && nz == 0 {
		return false
	}
	s.startLeap(c,
		c.X+nx*config.ChampionManualLeapDistance,
		c.Z+nz*config.ChampionManualLeapDistance,
		config.ChampionManualLeapDuration,
		config.ChampionManualLeapHeight,
	)
	return true
}

func (s *ChampionSystem) Update(deltaTime float64) {
	c := s.store.Champion
	if c == nil || !c.Alive {
		return
	}
	if step, ok := s.phases[c.Phase]; ok {
		step(c, deltaTime)
	}
}

func (s *ChampionSystem) updateFighting(c *component.Champion, deltaTime float64) {
	c.Lifetime -= deltaTime
	if c.Lifetime <= 0 {
		s.beginExit(c)
		return
	}

	switch c.Action {
	case component.ChampionLeaping:
		s.stepLeap(c, deltaTime)
	case component.ChampionCharging:
		s.stepCharge(c, deltaTime)
	default:
		s.seek(c, deltaTime)
	}
}

// seek: цель в радиусе обнаружения — начинаем рывок, иначе идём к лидеру.
func (s *ChampionSystem) seek(c *component.Champion, deltaTime float64) {
	inRange := s.store.LeadEnemy(func(e *component.Enemy) bool {
		return utils.Dist2D(c.X, c.Z, e.X, e.Z) <= c.DetectionRadius
	})
	if inRange != nil {
		c.Action = component.ChampionCharging
		c.LockedID = inRange.ID
		c.LockX, c.LockZ = inRange.X, inRange.Z
		c.ChargeTimer = c.ChargeDuration
		faceTowards(c, inRange.X, inRange.Z)
		return
	}

	lead := s.store.LeadEnemy(nil)
	if lead == nil {
		return
	}
	faceTowards(c, lead.X, lead.Z)
	moveTowards(c, lead.X, lead.Z, c.Speed*deltaTime)
}

// stepCharge: стоим на месте, следим за целью, по таймеру прыгаем.
func (s *ChampionSystem) stepCharge(c *component.Champion, deltaTime float64) {
	if target := s.store.EnemyByID(c.LockedID); target != nil {
		c.LockX, c.LockZ = target.X, target.Z
	}
	faceTowards(c, c.LockX, c.LockZ)

	c.ChargeTimer -= deltaTime
	if c.ChargeTimer <= 0 {
		s.startLeap(c, c.LockX, c.LockZ, config.ChampionLeapDuration, config.ChampionLeapHeight)
	}
}

func (s *ChampionSystem) startLeap(c *component.Champion, x, z, duration, height float64) {
	c.Action = component.ChampionLeaping
	c.ChargeTimer = 0
	c.LeapTimer = 0
	c.LeapDuration = duration
	c.LeapHeight = height
	c.LeapStartX, c.LeapStartZ = c.X, c.Z
	c.LockX, c.LockZ = x, z
	faceTowards(c, x, z)
}

func (s *ChampionSystem) stepLeap(c *component.Champion, deltaTime float64) {
	c.LeapTimer += deltaTime
	progress := 1.0
	if c.LeapDuration > 0 {
		progress = math.Min(1, c.LeapTimer/c.LeapDuration)
	}

	c.X = utils.Lerp(c.LeapStartX, c.LockX, progress)
	c.Z = utils.Lerp(c.LeapStartZ, c.LockZ, progress)
	c.Y = groundLevel(c.Radius) + utils.Arc(c.LeapHeight, progress)
	if dx, dz := c.LockX-c.LeapStartX, c.LockZ-c.LeapStartZ; dx != 0 || dz != 0 {
		c.Yaw = utils.Yaw(dx, dz)
	}

	if progress < 1 {
		return
	}
	s.land(c)
}

// land — приземление с уроном по области, как у взрывного снаряда
func (s *ChampionSystem) land(c *component.Champion) {
	c.X, c.Z = c.LockX, c.LockZ
	c.Y = groundLevel(c.Radius)
	kills := DamageArea(s.store, s.eventDispatcher, c.X, c.Z, c.LandingRadius, c.LandingDamage)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ChampionLanded,
		Data: event.ImpactData{X: c.X, Z: c.Z, Radius: c.LandingRadius, Kills: kills},
	})
	s.clearAttack(c)
}

func (s *ChampionSystem) clearAttack(c *component.Champion) {
	c.Action = component.ChampionSeeking
	c.LockedID = 0
	c.ChargeTimer = 0
	c.LeapTimer = 0
	c.LeapDuration = config.ChampionLeapDuration
	c.LeapHeight = config.ChampionLeapHeight
}

// beginExit прерывает бой и отправляет чемпиона к ближайшему краю карты.
func (s *ChampionSystem) beginExit(c *component.Champion) {
	s.clearAttack(c)
	c.Lifetime = 0
	c.Y = groundLevel(c.Radius)

	edge := s.store.Map.NearestEdge(c.X, c.Z)
	c.ExitX, c.ExitZ = edge.X, edge.Z
	if utils.Dist2D(c.X, c.Z, edge.X, edge.Z) > utils.Epsilon {
		faceTowards(c, edge.X, edge.Z)
	} else {
		c.Yaw = s.outwardYaw(edge.X, edge.Z)
	}
	c.Phase = component.ChampionExitingWalk
}

func (s *ChampionSystem) updateExitWalk(c *component.Champion, deltaTime float64) {
	faceTowards(c, c.ExitX, c.ExitZ)
	if !moveTowards(c, c.ExitX, c.ExitZ, c.Speed*deltaTime) {
		return
	}
	c.ExitTimer = config.ChampionExitChargeDuration
	c.Phase = component.ChampionExitingCharge
}

func (s *ChampionSystem) updateExitCharge(c *component.Champion, deltaTime float64) {
	c.ExitTimer -= deltaTime
	if c.ExitTimer > 0 {
		return
	}
	dirX, dirZ := utils.YawDirection(c.Yaw)
	c.ExitStartX, c.ExitStartZ = c.X, c.Z
	c.ExitX = c.X + dirX*config.ChampionExitJumpDistance
	c.ExitZ = c.Z + dirZ*config.ChampionExitJumpDistance
	c.ExitTimer = 0
	c.Phase = component.ChampionExitingJump
}

// updateExitJump — баллистическая дуга с дополнительным ускорением вниз
func (s *ChampionSystem) updateExitJump(c *component.Champion, deltaTime float64) {
	c.ExitTimer += deltaTime
	progress := math.Min(1, c.ExitTimer/config.ChampionExitJumpDuration)

	c.X = utils.Lerp(c.ExitStartX, c.ExitX, progress)
	c.Z = utils.Lerp(c.ExitStartZ, c.ExitZ, progress)
	c.Y = groundLevel(c.Radius) +
		utils.Arc(config.ChampionExitJumpHeight, progress) -
		0.5*config.ChampionExitGravity*c.ExitTimer*c.ExitTimer

	if progress >= 1 || c.Y < config.ChampionExitFloor {
		c.Alive = false
		c.Phase = component.ChampionInactive
		s.eventDispatcher.Dispatch(event.Event{Type: event.ChampionDespawned})
	}
}

// outwardYaw — взгляд наружу с края земли
func (s *ChampionSystem) outwardYaw(x, z float64) float64 {
	hx, hz := s.store.Map.HalfExtents()
	switch {
	case x >= hx:
		return utils.Yaw(1, 0)
	case x <= -hx:
		return utils.Yaw(-1, 0)
	case z >= hz:
		return utils.Yaw(0, 1)
	default:
		return utils.Yaw(0, -1)
	}
}

func groundLevel(radius float64) float64 {
	return config.GroundY + radius
}

func faceTowards(c *component.Champion, x, z float64) {
	dx, dz := x-c.X, z-c.Z
	if math.Hypot(dx, dz) <= utils.Epsilon {
		return
	}
	c.Yaw = utils.Yaw(dx, dz)
}

// moveTowards двигает чемпиона по прямой. Возвращает true по прибытии.
func moveTowards(c *component.Champion, x, z, step float64) bool {
	dist := utils.Dist2D(c.X, c.Z, x, z)
	if dist <= step || dist < config.ChampionArriveThreshold {
		c.X, c.Z = x, z
		return true
	}
	nx, nz := utils.Normalize2D(x-c.X, z-c.Z)
	c.X += nx * step
	c.Z += nz * step
	return false
}
