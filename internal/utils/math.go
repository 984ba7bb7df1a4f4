// internal/utils/math.go
package utils

import "math"

// Epsilon — порог, ниже которого вектор считается нулевым
const Epsilon = 1e-6

// Dist2D возвращает расстояние между двумя точками на плоскости земли (x, z)
func Dist2D(ax, az, bx, bz float64) float64 {
	return math.Hypot(bx-ax, bz-az)
}

// Normalize2D возвращает единичный вектор. Для вырожденного вектора — (0, 0).
func Normalize2D(dx, dz float64) (float64, float64) {
	mag := math.Hypot(dx, dz)
	if mag <= Epsilon {
		return 0, 0
	}
	return dx / mag, dz / mag
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Yaw возвращает угол поворота (в радианах) для взгляда вдоль (dx, dz).
// Ноль смотрит вдоль +Z, как у башен.
func Yaw(dx, dz float64) float64 {
	return math.Atan2(dx, dz)
}

// YawDirection — обратная операция к Yaw: единичный вектор взгляда.
func YawDirection(yaw float64) (float64, float64) {
	return math.Sin(yaw), math.Cos(yaw)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Arc возвращает высоту параболической дуги в точке progress ∈ [0, 1].
func Arc(height, progress float64) float64 {
	return 4 * height * progress * (1 - progress)
}
