// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"tower-siege/internal/app"
	"tower-siege/internal/config"
	"tower-siege/internal/defs"
	"tower-siege/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var buildKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

// AppGame связывает ebiten с ядром симуляции: ввод → команды, кадр → Update.
type AppGame struct {
	game           *app.Game
	view           *view
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch a.game.Phase() {
	case state.MainMenu, state.GameOver:
		a.handleMenuInput()
	case state.Paused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || a.pauseClicked() {
			a.togglePause()
		}
	case state.Playing:
		a.handleGameInput()
	}

	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) handleMenuInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.game.SelectNextMap()
		a.game.ResetSession(false)
		a.view.fit(a.game.Store.Map)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.game.StartGame()
		a.view.fit(a.game.Store.Map)
	}
}

func (a *AppGame) handleGameInput() {
	for i, key := range buildKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.game.BuildTowerAtSlot(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.game.ActivateFastAttack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.game.ActivateExplosive()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.game.ActivateMeteor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.game.ActivateChampion()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if c := a.game.Store.Champion; c != nil {
			a.game.SetChampionManualControl(!c.ManualControl)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || a.pauseClicked() {
		a.togglePause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.ReturnToMenu()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c := a.game.Store.Champion; c != nil && c.ManualControl {
			wx, wz := a.view.toWorld(ebiten.CursorPosition())
			a.game.ChampionManualLeap(wx-c.X, wz-c.Z)
		}
	}
}

func (a *AppGame) pauseClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		a.view.pause.Contains(ebiten.CursorPosition())
}

func (a *AppGame) togglePause() {
	if a.game.TogglePause() {
		a.view.pause.Clicked()
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.view.draw(screen, a.game)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	devMode := flag.Bool("dev", false, "Start directly in the game state for development")
	mapName := flag.String("map", config.DefaultMapName, "Map preset to start with")
	mapsPath := flag.String("maps", "", "Optional JSON file with map presets")
	money := flag.Float64("money", -1, "Starting money, negative means unlimited")
	flag.Parse()

	opts := app.DefaultOptions()
	opts.MapName = *mapName
	if *money >= 0 {
		opts.StartingMoney = *money
	} else {
		opts.StartingMoney = math.Inf(1)
	}
	if *mapsPath != "" {
		maps, err := defs.LoadMapDefinitions(*mapsPath)
		if err != nil {
			log.Fatalf("Failed to load definitions: %v", err)
		}
		opts.Maps = maps
	}

	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	if *devMode {
		log.Println("---" + "DEV MODE: Starting game directly" + "---")
		game.ResetSession(true)
	}

	appGame := &AppGame{
		game:           game,
		view:           newView(game.Store.Map),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Siege")
	if err := ebiten.RunGame(appGame); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
