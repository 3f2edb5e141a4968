package shapedraw

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AlphaFade animates a Material's alpha. Create one with FadeAlpha and call
// Update(dt) each tick. There is no global animation manager.
type AlphaFade struct {
	tween  *gween.Tween
	target *Material
	Done   bool
}

// FadeAlpha creates an AlphaFade that animates m.Color.A from its current
// value to `to` over duration seconds. A non-positive duration applies the
// target immediately.
func FadeAlpha(m *Material, to float64, duration float32, fn ease.TweenFunc) *AlphaFade {
	if duration <= 0 {
		m.Color.A = to
		return &AlphaFade{target: m, Done: true}
	}
	return &AlphaFade{
		tween:  gween.New(float32(m.Color.A), float32(to), duration, fn),
		target: m,
	}
}

// Update advances the fade by dt seconds and writes the new alpha.
func (f *AlphaFade) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.target.Color.A = float64(val)
	f.Done = finished
}
