package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	X, Y, Z         float64
	DX, DY, DZ      float64 // направление: единичный вектор на плоскости + подъём
	Speed           float64
	Damage          float64
	Radius          float64
	Lifetime        float64
	MaxLifetime     float64
	Explosive       bool // фиксируется в момент выстрела
	ExplosionRadius float64
	Alive           bool
}
