package shapedraw

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	p.InjectPress(1, 2)
	p.InjectMove(3, 4)
	p.InjectRelease(5, 6)
	if p.PendingInjections() != 3 {
		t.Fatalf("PendingInjections = %d, want 3", p.PendingInjections())
	}

	var in RawInput
	if !p.readInjectedInput(&in) {
		t.Fatal("expected injected input")
	}
	if !in.MouseJustPressed || !in.MousePressed || in.Cursor != (Vec2{X: 1, Y: 2}) {
		t.Errorf("press = %+v", in)
	}

	in.reset()
	p.readInjectedInput(&in)
	if in.MouseJustPressed || !in.MousePressed || in.Cursor != (Vec2{X: 3, Y: 4}) {
		t.Errorf("move = %+v", in)
	}

	in.reset()
	p.readInjectedInput(&in)
	if !in.MouseJustReleased || in.MousePressed || in.Cursor != (Vec2{X: 5, Y: 6}) {
		t.Errorf("release = %+v", in)
	}
	if p.PendingInjections() != 0 {
		t.Errorf("PendingInjections = %d, want 0", p.PendingInjections())
	}
}

func TestInjectPressHeldAcrossEmptyTicks(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	p.InjectPress(1, 1)

	var in RawInput
	p.readInjectedInput(&in)

	in.reset()
	if !p.readInjectedInput(&in) {
		t.Fatal("held injected press should keep producing input")
	}
	if !in.MousePressed || in.MouseJustPressed || in.CursorMoved {
		t.Errorf("held = %+v", in)
	}
}

func TestInjectEmptyQueue(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var in RawInput
	if p.readInjectedInput(&in) {
		t.Error("empty queue should fall through to real input")
	}
}

func TestInjectDrag(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	p.InjectDrag(0, 0, 100, 50, 6)
	if p.PendingInjections() != 6 {
		t.Fatalf("PendingInjections = %d, want 6", p.PendingInjections())
	}
	// Moves are evenly spaced between the endpoints.
	mid := p.injectQueue[2]
	if !approxEqual(mid.position.X, 40, epsilon) || !approxEqual(mid.position.Y, 20, epsilon) {
		t.Errorf("move 2 = %v, want (40, 20)", mid.position)
	}
	last := p.injectQueue[5]
	if last.pressed || last.position != (Vec2{X: 100, Y: 50}) {
		t.Errorf("last = %+v, want release at (100, 50)", last)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	p.InjectDrag(0, 0, 1, 1, 0)
	if p.PendingInjections() != 2 {
		t.Errorf("PendingInjections = %d, want 2", p.PendingInjections())
	}
}

func TestInjectTouch(t *testing.T) {
	opts := testOptions(true)
	opts.MapTouch = FlipY(100)
	p := newTestPlugin(opts)
	p.InjectTouch(3, 10, 20, TouchStarted)
	p.Update()

	if id, ok := p.TrackedTouch(); !ok || id != 3 {
		t.Errorf("TrackedTouch = %d, %v, want 3", id, ok)
	}
	entry := editedEntry(t, p)
	assertVec(t, "origin", EditingComponent.Get(entry).Origin, Vec3{X: 10, Z: 80})
}

func TestInjectionSkipsRealInput(t *testing.T) {
	opts := testOptions(true)
	source := &scriptedInput{frames: []RawInput{{MouseJustPressed: true, MousePressed: true}}}
	opts.Input = source
	p := newTestPlugin(opts)

	p.InjectMove(1, 1)
	p.Update()
	if len(source.frames) != 1 {
		t.Error("real input read during an injected tick")
	}
}
