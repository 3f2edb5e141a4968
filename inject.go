package shapedraw

// syntheticInput represents a single injected input event. Mouse events use
// screen coordinates, identical to real cursor input.
type syntheticInput struct {
	position Vec2
	touch    bool

	// mouse
	pressed bool

	// touch
	touchID uint64
	phase   TouchPhase
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed by the next Update.
func (p *Plugin) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticInput{
		position: Vec2{X: x, Y: y},
		pressed:  true,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (p *Plugin) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticInput{
		position: Vec2{X: x, Y: y},
		pressed:  true,
	})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (p *Plugin) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticInput{
		position: Vec2{X: x, Y: y},
	})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). The sequence consumes `frames` ticks. Minimum frames is 2.
func (p *Plugin) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.InjectMove(x, y)
	}
	p.InjectRelease(toX, toY)
}

// InjectTouch queues a single touch event. Touch positions go through the
// configured touch mapping like real touches.
func (p *Plugin) InjectTouch(id uint64, x, y float64, phase TouchPhase) {
	p.injectQueue = append(p.injectQueue, syntheticInput{
		position: Vec2{X: x, Y: y},
		touch:    true,
		touchID:  id,
		phase:    phase,
	})
}

// PendingInjections returns how many injected events have not been consumed.
func (p *Plugin) PendingInjections() int {
	return len(p.injectQueue)
}

// readInjectedInput pops one event from the inject queue into in. An
// injected press stays held across empty ticks until a release is injected.
// Returns true if synthetic input was produced (real input should be skipped).
func (p *Plugin) readInjectedInput(in *RawInput) bool {
	if len(p.injectQueue) == 0 {
		if p.injectPressed {
			in.MousePressed = true
			return true
		}
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.touch {
		in.Touches = append(in.Touches, TouchEvent{ID: evt.touchID, Position: evt.position, Phase: evt.phase})
		in.MousePressed = p.injectPressed
		return true
	}

	in.Cursor = evt.position
	in.CursorMoved = true
	in.MousePressed = evt.pressed
	in.MouseJustPressed = evt.pressed && !p.injectPressed
	in.MouseJustReleased = !evt.pressed && p.injectPressed
	p.injectPressed = evt.pressed
	return true
}
