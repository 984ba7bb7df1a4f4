package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMaps(t *testing.T) {
	maps, err := DefaultMaps()
	if err != nil {
		t.Fatalf("DefaultMaps: %v", err)
	}
	if len(maps) != 2 || maps[0].Name != "Default" || maps[1].Name != "Mohammadpur" {
		t.Fatalf("unexpected presets: %d maps", len(maps))
	}

	def := maps[0]
	if len(def.TowerSlots) != 7 {
		t.Errorf("Default slots = %d, want 7", len(def.TowerSlots))
	}
	if got := def.RemainingPath(0, def.Spawn().X, def.Spawn().Z); got != 24 {
		t.Errorf("Default path length = %v, want 24", got)
	}
	if len(maps[1].TowerSlots) != 10 || maps[1].Ground != [2]float64{60, 40} {
		t.Errorf("Mohammadpur preset mismatch")
	}

	if i, ok := FindMap(maps, "Mohammadpur"); !ok || i != 1 {
		t.Errorf("FindMap = %d, %v", i, ok)
	}
	if _, ok := FindMap(maps, "Atlantis"); ok {
		t.Error("found a map that does not exist")
	}
}

func TestParseMapDefinitionsErrors(t *testing.T) {
	valid := `{"name": "A", "path": [[0, 0], [1, 0]], "tower_slots": [[0, 1]], "ground": [10, 10]}`
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", `[{"name": }]`, "unmarshal"},
		{"empty", `[]`, "no map definitions"},
		{"short path", `[{"name": "A", "path": [[0, 0]], "tower_slots": [[0, 1]], "ground": [10, 10]}]`, "at least 2 waypoints"},
		{"no slots", `[{"name": "A", "path": [[0, 0], [1, 0]], "ground": [10, 10]}]`, "no tower slots"},
		{"no ground", `[{"name": "A", "path": [[0, 0], [1, 0]], "tower_slots": [[0, 1]]}]`, "ground extent"},
		{"bad point", `[{"name": "A", "path": [[0, 0], {"x": 1}], "tower_slots": [[0, 1]], "ground": [10, 10]}]`, "[x, z]"},
		{"duplicate", "[" + valid + "," + valid + "]", "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapDefinitions([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMapDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.json")
	data := `[{"name": "Strip", "path": [[-5, 0], [5, 0]], "tower_slots": [[0, 2]], "ground": [20, 10]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	maps, err := LoadMapDefinitions(path)
	if err != nil {
		t.Fatalf("LoadMapDefinitions: %v", err)
	}
	if len(maps) != 1 || maps[0].Base() != (Point{5, 0}) {
		t.Errorf("loaded %+v", maps)
	}

	if _, err := LoadMapDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNearestEdge(t *testing.T) {
	m := MapDefinition{Name: "E", Path: []Point{{0, 0}, {1, 0}}, TowerSlots: []Point{{0, 1}}, Ground: [2]float64{30, 20}}
	tests := []struct {
		x, z float64
		want Point
	}{
		{10, 0, Point{15, 0}},
		{-12, 3, Point{-15, 3}},
		{2, 8, Point{2, 10}},
		{2, -9, Point{2, -10}},
		// ничьи разрешаются в порядке +X, -X, +Z, -Z
		{0, 0, Point{0, 10}},
		{10, 5, Point{15, 5}},
		{-10, -5, Point{-15, -5}},
		// точка вне земли прижимается к краю
		{40, 0, Point{15, 0}},
	}
	for _, tt := range tests {
		if got := m.NearestEdge(tt.x, tt.z); got != tt.want {
			t.Errorf("NearestEdge(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestRemainingPath(t *testing.T) {
	m := MapDefinition{
		Name:       "L",
		Path:       []Point{{0, 0}, {10, 0}, {10, 10}},
		TowerSlots: []Point{{0, 1}},
		Ground:     [2]float64{30, 30},
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		idx  int
		x, z float64
		want float64
	}{
		{0, 0, 0, 20},
		{0, 4, 0, 16},
		{1, 10, 3, 7},
		{2, 10, 9.5, 0.5},
	}
	for _, tt := range tests {
		if got := m.RemainingPath(tt.idx, tt.x, tt.z); got != tt.want {
			t.Errorf("RemainingPath(%d, %v, %v) = %v, want %v", tt.idx, tt.x, tt.z, got, tt.want)
		}
	}
	if !m.InBounds(15, -15) || m.InBounds(15.1, 0) {
		t.Error("InBounds mismatch")
	}
}
