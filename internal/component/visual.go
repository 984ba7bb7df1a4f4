package component

// ScreenShake — сигнал рендеру о тряске камеры. На геймплей не влияет.
type ScreenShake struct {
	Intensity float64
	Timer     float64
}

// Request поднимает тряску, не ослабляя уже идущую.
func (s *ScreenShake) Request(intensity, duration float64) {
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}
