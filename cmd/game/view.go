// cmd/game/view.go
package main

import (
	"fmt"
	"image/color"
	"math"

	"tower-siege/internal/app"
	"tower-siege/internal/config"
	"tower-siege/internal/defs"
	"tower-siege/internal/state"
	"tower-siege/internal/ui"
	"tower-siege/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// view — плоская отладочная проекция сверху. Только читает состояние ядра.
type view struct {
	scale          float64
	offsetX        float64
	offsetY        float64
	shakeX, shakeY float64

	health *ui.PlayerHealthIndicator
	wave   *ui.WaveIndicator
	pause  *ui.PauseButton
}

func newView(m *defs.MapDefinition) *view {
	v := &view{
		health: ui.NewPlayerHealthIndicator(config.ScreenWidth-110, 22, config.LeakDamage),
		wave:   ui.NewWaveIndicator(config.ScreenWidth-60, 82),
		pause: ui.NewPauseButton(config.ScreenWidth-30, config.ScreenHeight-30, 10,
			config.TextColor, config.BaseColor),
	}
	v.fit(m)
	return v
}

// fit подбирает масштаб под размер земли карты
func (v *view) fit(m *defs.MapDefinition) {
	sx := float64(config.ScreenWidth) / m.Ground[0]
	sz := float64(config.ScreenHeight-60) / m.Ground[1]
	v.scale = math.Min(sx, sz) * 0.95
	v.offsetX = float64(config.ScreenWidth) / 2
	v.offsetY = float64(config.ScreenHeight)/2 + 30
}

func (v *view) toScreen(x, z float64) (float32, float32) {
	return float32(v.offsetX + v.shakeX + x*v.scale), float32(v.offsetY + v.shakeY + z*v.scale)
}

func (v *view) toWorld(sx, sy int) (float64, float64) {
	return (float64(sx) - v.offsetX) / v.scale, (float64(sy) - v.offsetY) / v.scale
}

func (v *view) radius(r float64) float32 {
	return float32(math.Max(1, r*v.scale))
}

func (v *view) draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)
	s := g.Store

	// Тряска: смещение от ядра, фаза — от времени симуляции
	v.shakeX, v.shakeY = 0, 0
	if s.Shake.Timer > 0 {
		amp := s.Shake.Intensity * v.scale * 0.5
		v.shakeX = amp * math.Sin(s.GameTime*70)
		v.shakeY = amp * math.Cos(s.GameTime*53)
	}

	hx, hz := s.Map.HalfExtents()
	x0, y0 := v.toScreen(-hx, -hz)
	x1, y1 := v.toScreen(hx, hz)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, config.GroundColor, false)

	path := s.Map.Path
	width := float32(s.Map.PathWidth * v.scale)
	for i := 0; i+1 < len(path); i++ {
		ax, ay := v.toScreen(path[i].X, path[i].Z)
		bx, by := v.toScreen(path[i+1].X, path[i+1].Z)
		vector.StrokeLine(screen, ax, ay, bx, by, width, config.PathColor, true)
	}
	base := s.Map.Base()
	bx, by := v.toScreen(base.X, base.Z)
	vector.DrawFilledRect(screen, bx-float32(0.9*v.scale), by-float32(0.9*v.scale), float32(1.8*v.scale), float32(1.8*v.scale), config.BaseColor, false)

	for i, slot := range s.Slots {
		sx, sy := v.toScreen(slot.X, slot.Z)
		half := float32(0.45 * v.scale)
		vector.DrawFilledRect(screen, sx-half, sy-half, 2*half, 2*half, config.SlotColor, false)
		if !slot.Occupied {
			text.Draw(screen, fmt.Sprint((i+1)%10), basicfont.Face7x13, int(sx)-3, int(sy)+4, color.White)
			continue
		}
		t := slot.Tower
		vector.DrawFilledCircle(screen, sx, sy, v.radius(0.35), config.TowerColor, true)
		dx, dz := utils.YawDirection(t.Yaw)
		ex, ey := v.toScreen(t.X+dx*0.7, t.Z+dz*0.7)
		vector.StrokeLine(screen, sx, sy, ex, ey, 3, config.BarrelColor, true)
		vector.StrokeCircle(screen, sx, sy, v.radius(t.Range), 1, color.RGBA{25, 178, 25, 120}, true)
	}

	for _, e := range s.Enemies {
		clr := config.EnemyColor
		if e.IsBoss {
			clr = config.BossColor
		}
		ex, ey := v.toScreen(e.X, e.Z)
		vector.DrawFilledCircle(screen, ex, ey, v.radius(e.Radius), clr, true)
	}

	for _, p := range s.Projectiles {
		clr := config.BulletColor
		if p.Explosive {
			clr = config.ExplosiveColor
		}
		px, py := v.toScreen(p.X, p.Z)
		vector.DrawFilledCircle(screen, px, py, v.radius(p.Radius*1.5), clr, true)
	}

	for _, m := range s.Meteors {
		mx, my := v.toScreen(m.X, m.Z)
		// Высота показывается размером тени
		vector.StrokeCircle(screen, mx, my, v.radius(m.Radius*(1+m.Y/config.MeteorStartHeight)), 2, config.MeteorColor, true)
	}

	if c := s.Champion; c != nil && c.Alive {
		cx, cy := v.toScreen(c.X, c.Z)
		vector.DrawFilledCircle(screen, cx, cy, v.radius(c.Radius*(1+math.Max(0, c.Y)/4)), config.ChampionColor, true)
		dx, dz := utils.YawDirection(c.Yaw)
		fx, fy := v.toScreen(c.X+dx, c.Z+dz)
		vector.StrokeLine(screen, cx, cy, fx, fy, 2, color.Black, true)
	}

	v.drawHUD(screen, g)
}

func (v *view) drawHUD(screen *ebiten.Image, g *app.Game) {
	snap := g.Snapshot()
	money := "inf"
	if !math.IsInf(snap.Money, 1) {
		money = fmt.Sprintf("%.0f", snap.Money)
	}
	status := fmt.Sprintf("Money: %s   Score: %d   Wave: %d   Map: %s",
		money, snap.Score, snap.Wave, snap.MapName)
	text.Draw(screen, status, basicfont.Face7x13, 10, 18, config.TextColor)

	buffs := fmt.Sprintf("Fast: %v   Explosive: %v   Champion: %v %.1fs",
		snap.FastAttack, snap.Explosive, snap.ChampionPhase, snap.ChampionLifetime)
	text.Draw(screen, buffs, basicfont.Face7x13, 10, 36, config.TextColor)
	text.Draw(screen, "[1-0] Build | F Fast | E Explosive | M Meteor | C Champion | L Manual leap | P Pause | Q Quit",
		basicfont.Face7x13, 10, 54, config.TextColor)

	v.health.Draw(screen, snap.Health, config.PlayerHealth)
	v.wave.Draw(screen, snap.Wave)
	v.pause.Draw(screen, snap.Phase == state.Paused)

	var banner string
	switch snap.Phase {
	case state.MainMenu:
		banner = fmt.Sprintf("ENTER to start   N next map (%s)", g.SelectedMapName())
	case state.Paused:
		banner = "PAUSED"
	case state.GameOver:
		banner = fmt.Sprintf("GAME OVER  score %d   ENTER to restart", snap.Score)
	}
	if banner != "" {
		vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 128}, false)
		text.Draw(screen, banner, basicfont.Face7x13, config.ScreenWidth/2-len(banner)*7/2, config.ScreenHeight/2, color.White)
	}
}
