package shapedraw

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeAlphaReachesTarget(t *testing.T) {
	m := &Material{Color: Color{R: 1, A: 0}}
	f := FadeAlpha(m, 0.8, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	f.Update(0.5)
	if math.Abs(m.Color.A-0.4) > 0.01 {
		t.Errorf("A at half time = %f, want ~0.4", m.Color.A)
	}
	f.Update(0.5)

	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(m.Color.A-0.8) > 1e-6 {
		t.Errorf("A = %f, want 0.8", m.Color.A)
	}
	if m.Color.R != 1 {
		t.Error("fade should only touch alpha")
	}
}

func TestFadeAlphaZeroDuration(t *testing.T) {
	m := &Material{Color: Color{A: 1}}
	f := FadeAlpha(m, 0.25, 0, ease.Linear)
	if !f.Done || m.Color.A != 0.25 {
		t.Errorf("Done = %v, A = %v, want immediate 0.25", f.Done, m.Color.A)
	}
	f.Update(1) // no-op once done
	if m.Color.A != 0.25 {
		t.Errorf("A changed after Done: %v", m.Color.A)
	}
}

func TestFadeAlphaStopsWhenDone(t *testing.T) {
	m := &Material{}
	f := FadeAlpha(m, 1, 0.1, ease.OutQuad)
	f.Update(0.2)
	if !f.Done {
		t.Fatal("expected Done")
	}
	m.Color.A = 0.3
	f.Update(0.1)
	if m.Color.A != 0.3 {
		t.Error("Update after Done should not write")
	}
}
