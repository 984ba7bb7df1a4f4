// cmd/simulate/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"tower-siege/internal/app"
	"tower-siege/internal/event"
	"tower-siege/internal/state"
)

// Прогоняет сессию без окна с фиксированным шагом и печатает итог.
// Одинаковые флаги дают одинаковый результат.
func main() {
	mapName := flag.String("map", "Default", "Map preset")
	seconds := flag.Float64("seconds", 120, "Simulated time")
	step := flag.Float64("dt", 1.0/60, "Fixed frame step in seconds")
	slots := flag.String("slots", "0,1,2,3,4,5,6", "Comma-separated tower slots to build at start")
	money := flag.Float64("money", -1, "Starting money, negative means unlimited")
	fastAt := flag.Float64("fast-at", -1, "Activate fast attack at this time")
	explosiveAt := flag.Float64("explosive-at", -1, "Activate explosive rounds at this time")
	meteorAt := flag.Float64("meteor-at", -1, "Drop a meteor at this time")
	championAt := flag.Float64("champion-at", -1, "Summon the champion at this time")
	quiet := flag.Bool("quiet", false, "Silence session logging")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}
	if *step <= 0 {
		log.Fatalf("dt must be positive, got %v", *step)
	}

	opts := app.DefaultOptions()
	opts.MapName = *mapName
	if *money >= 0 {
		opts.StartingMoney = *money
	}
	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	stats := &counter{}
	game.Subscribe(event.EnemyKilled, stats)
	game.Subscribe(event.EnemyLeaked, stats)
	game.Subscribe(event.BossSpawned, stats)

	game.ResetSession(true)
	for _, idx := range parseSlots(*slots) {
		if !game.BuildTowerAtSlot(idx) {
			log.Printf("Could not build tower at slot %d", idx)
		}
	}

	scheduled := []struct {
		at     *float64
		name   string
		action func() bool
	}{
		{fastAt, "fast attack", game.ActivateFastAttack},
		{explosiveAt, "explosive", game.ActivateExplosive},
		{meteorAt, "meteor", game.ActivateMeteor},
		{championAt, "champion", game.ActivateChampion},
	}

	frames := int(math.Round(*seconds / *step))
	for i := 0; i < frames; i++ {
		now := game.Store.GameTime
		for _, s := range scheduled {
			if *s.at >= 0 && now >= *s.at {
				log.Printf("t=%.2f %s: %v", now, s.name, s.action())
				*s.at = -1
			}
		}
		game.Update(*step)
		if game.Phase() == state.GameOver {
			break
		}
	}

	snap := game.Snapshot()
	fmt.Fprintf(os.Stdout, "map=%s phase=%v time=%.2f wave=%d health=%d money=%v score=%d\n",
		snap.MapName, snap.Phase, snap.GameTime, snap.Wave, snap.Health, snap.Money, snap.Score)
	fmt.Fprintf(os.Stdout, "kills=%d leaks=%d bosses=%d enemies=%d projectiles=%d champion=%v\n",
		stats.kills, stats.leaks, stats.bosses, snap.Enemies, snap.Projectiles, snap.ChampionPhase)
}

type counter struct {
	kills, leaks, bosses int
}

func (c *counter) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		c.kills++
	case event.EnemyLeaked:
		c.leaks++
	case event.BossSpawned:
		c.bosses++
	}
}

func parseSlots(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			log.Fatalf("bad slot index %q: %v", part, err)
		}
		out = append(out, idx)
	}
	return out
}
