package ui

import (
	"image/color"
	"testing"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := ToRoman(tt.in); got != tt.want {
			t.Errorf("ToRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddsBoss(t *testing.T) {
	for wave, want := range map[int]bool{1: false, 2: false, 3: false, 4: true, 5: false, 7: true, 10: true} {
		if got := AddsBoss(wave); got != want {
			t.Errorf("AddsBoss(%d) = %v, want %v", wave, got, want)
		}
	}
}

func TestHealthPips(t *testing.T) {
	ind := NewPlayerHealthIndicator(0, 0, 10)

	tests := []struct {
		health, filled int
	}{
		{100, 10},
		{95, 10},
		{90, 9},
		{1, 1},
		{0, 0},
	}
	for _, tt := range tests {
		filled, total := ind.Pips(tt.health, 100)
		if filled != tt.filled || total != 10 {
			t.Errorf("Pips(%d) = %d/%d, want %d/10", tt.health, filled, total, tt.filled)
		}
	}
}

func TestPipColor(t *testing.T) {
	// 8 из 10: три «избыточных» синих, пять красных, два пустых
	want := []color.Color{
		healthSurplusColor, healthSurplusColor, healthSurplusColor,
		healthCriticalColor, healthCriticalColor, healthCriticalColor, healthCriticalColor, healthCriticalColor,
		healthEmptyColor, healthEmptyColor,
	}
	for j, w := range want {
		if got := PipColor(j, 8, 10); got != w {
			t.Errorf("PipColor(%d, 8, 10) = %v, want %v", j, got, w)
		}
	}

	// не больше половины — все красные
	for j := 0; j < 4; j++ {
		if got := PipColor(j, 4, 10); got != healthCriticalColor {
			t.Errorf("PipColor(%d, 4, 10) = %v, want critical", j, got)
		}
	}
}

func TestPauseButtonContains(t *testing.T) {
	b := NewPauseButton(100, 50, 10, nil, nil)
	if !b.Contains(100, 50) || !b.Contains(108, 55) {
		t.Error("click inside the button missed")
	}
	if b.Contains(130, 50) {
		t.Error("click outside the button hit")
	}
}
