// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

var (
	healthSurplusColor  = color.RGBA{40, 90, 230, 255}
	healthCriticalColor = color.RGBA{220, 40, 40, 255}
	healthEmptyColor    = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
// Один кружок — один прорыв врага.
type PlayerHealthIndicator struct {
	X, Y         float32
	PipHealth    int // здоровье на один кружок
	OutlineColor color.Color
	LabelColor   color.Color
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, pipHealth int) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:            x,
		Y:            y,
		PipHealth:    pipHealth,
		OutlineColor: color.White,
		LabelColor:   color.Black,
	}
}

// Pips — сколько кружков заполнено из скольких
func (i *PlayerHealthIndicator) Pips(health, maxHealth int) (filled, total int) {
	if i.PipHealth <= 0 {
		return 0, 0
	}
	total = (maxHealth + i.PipHealth - 1) / i.PipHealth
	filled = (health + i.PipHealth - 1) / i.PipHealth
	return filled, total
}

// PipColor: пустые — черные; при здоровье не выше половины все красные,
// иначе «избыток» сверх половины синий, остальное красное.
func PipColor(j, filled, total int) color.Color {
	if j >= filled {
		return healthEmptyColor
	}
	half := total / 2
	if filled <= half || j >= filled-half {
		return healthCriticalColor
	}
	return healthSurplusColor
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	filled, total := i.Pips(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < total; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, PipColor(j, filled, total), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, i.OutlineColor, true)
	}

	// Текст над сеткой
	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	width := font.MeasureString(basicfont.Face7x13, label).Ceil()
	x := int(i.X) + (int(HealthCols*step)-width)/2
	text.Draw(screen, label, basicfont.Face7x13, x, int(i.Y)-6, i.LabelColor)
}
