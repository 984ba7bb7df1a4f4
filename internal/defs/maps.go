// internal/defs/maps.go
package defs

import (
	"encoding/json"
	"fmt"
	"math"

	"tower-siege/internal/utils"
)

// Point — точка на плоскости земли. В JSON записывается как [x, z].
type Point struct {
	X, Z float64
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var raw [2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("point must be [x, z]: %w", err)
	}
	p.X, p.Z = raw[0], raw[1]
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Z})
}

// MapDefinition — неизменяемый пресет карты.
type MapDefinition struct {
	Name           string     `json:"name"`
	Path           []Point    `json:"path"` // первая точка — спавн, последняя — база
	TowerSlots     []Point    `json:"tower_slots"`
	PathWidth      float64    `json:"path_width"`
	Ground         [2]float64 `json:"ground"`          // размер земли по X и Z
	CameraDistance float64    `json:"camera_distance"` // только для рендера

	remaining []float64 // длина пути от i-й точки до базы
}

// Validate проверяет пресет и подготавливает производные данные.
func (m *MapDefinition) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("map has no name")
	}
	if len(m.Path) < 2 {
		return fmt.Errorf("map %q: path needs at least 2 waypoints, got %d", m.Name, len(m.Path))
	}
	if len(m.TowerSlots) == 0 {
		return fmt.Errorf("map %q: no tower slots", m.Name)
	}
	if m.Ground[0] <= 0 || m.Ground[1] <= 0 {
		return fmt.Errorf("map %q: ground extent must be positive, got %v", m.Name, m.Ground)
	}

	m.prepare()
	return nil
}

func (m *MapDefinition) prepare() {
	m.remaining = make([]float64, len(m.Path))
	for i := len(m.Path) - 2; i >= 0; i-- {
		a, b := m.Path[i], m.Path[i+1]
		m.remaining[i] = m.remaining[i+1] + utils.Dist2D(a.X, a.Z, b.X, b.Z)
	}
}

// Spawn возвращает точку появления врагов
func (m *MapDefinition) Spawn() Point { return m.Path[0] }

// Base возвращает точку базы игрока
func (m *MapDefinition) Base() Point { return m.Path[len(m.Path)-1] }

// MidWaypoint — средняя точка пути, цель метеора при пустом поле
func (m *MapDefinition) MidWaypoint() Point { return m.Path[len(m.Path)/2] }

// RemainingPath возвращает длину пути до базы для сущности в (x, z),
// которая идёт к точке pathIdx+1.
func (m *MapDefinition) RemainingPath(pathIdx int, x, z float64) float64 {
	next := pathIdx + 1
	if next >= len(m.Path) {
		base := m.Base()
		return utils.Dist2D(x, z, base.X, base.Z)
	}
	if len(m.remaining) != len(m.Path) {
		m.prepare()
	}
	wp := m.Path[next]
	return utils.Dist2D(x, z, wp.X, wp.Z) + m.remaining[next]
}

// HalfExtents — половина размера земли
func (m *MapDefinition) HalfExtents() (float64, float64) {
	return m.Ground[0] / 2, m.Ground[1] / 2
}

// NearestEdge проецирует точку на ближайший край земли.
// При равенстве порядок: +X, -X, +Z, -Z.
func (m *MapDefinition) NearestEdge(x, z float64) Point {
	hx, hz := m.HalfExtents()
	x = utils.Clamp(x, -hx, hx)
	z = utils.Clamp(z, -hz, hz)

	candidates := []struct {
		dist float64
		p    Point
	}{
		{hx - x, Point{hx, z}},
		{x + hx, Point{-hx, z}},
		{hz - z, Point{x, hz}},
		{z + hz, Point{x, -hz}},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < best.dist {
			best = c
		}
	}
	return best.p
}

// InBounds — находится ли точка в пределах земли
func (m *MapDefinition) InBounds(x, z float64) bool {
	hx, hz := m.HalfExtents()
	return math.Abs(x) <= hx && math.Abs(z) <= hz
}
