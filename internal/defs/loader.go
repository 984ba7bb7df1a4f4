// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed maps.json
var embeddedMaps []byte

// DefaultMaps возвращает встроенные пресеты карт в порядке из файла.
func DefaultMaps() ([]MapDefinition, error) {
	return ParseMapDefinitions(embeddedMaps)
}

// LoadMapDefinitions читает пресеты карт из файла.
func LoadMapDefinitions(path string) ([]MapDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map definitions file: %w", err)
	}
	maps, err := ParseMapDefinitions(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d map definitions from %s", len(maps), path)
	return maps, nil
}

// ParseMapDefinitions разбирает и проверяет JSON со списком карт.
func ParseMapDefinitions(data []byte) ([]MapDefinition, error) {
	var maps []MapDefinition
	if err := json.Unmarshal(data, &maps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map definitions: %w", err)
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("no map definitions found")
	}

	seen := make(map[string]bool, len(maps))
	for i := range maps {
		if err := maps[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid map definition #%d: %w", i, err)
		}
		if seen[maps[i].Name] {
			return nil, fmt.Errorf("duplicate map name %q", maps[i].Name)
		}
		seen[maps[i].Name] = true
	}
	return maps, nil
}

// FindMap ищет карту по имени и возвращает её индекс.
func FindMap(maps []MapDefinition, name string) (int, bool) {
	for i := range maps {
		if maps[i].Name == name {
			return i, true
		}
	}
	return -1, false
}
