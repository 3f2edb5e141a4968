package shapedraw

// --- Raw input ---

// TouchPhase is the lifecycle stage of a touch event.
type TouchPhase uint8

const (
	TouchStarted   TouchPhase = iota // finger went down
	TouchMoved                       // finger moved while down
	TouchEnded                       // finger lifted
	TouchCancelled                   // the platform aborted the touch
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TouchEvent is one entry of the raw touch stream.
type TouchEvent struct {
	ID       uint64
	Position Vec2
	Phase    TouchPhase
}

// RawInput is everything an InputSource reports for one tick. Only the left
// mouse button is considered.
type RawInput struct {
	MouseJustPressed  bool
	MouseJustReleased bool
	MousePressed      bool

	// Cursor is the mouse position; only read when CursorMoved is set.
	Cursor      Vec2
	CursorMoved bool

	// Touches is the touch stream in delivery order.
	Touches []TouchEvent
}

func (in *RawInput) reset() {
	touches := in.Touches[:0]
	*in = RawInput{Touches: touches}
}

// InputSource fills in the raw input for the current tick.
type InputSource interface {
	ReadInput(in *RawInput)
}

// FlipY returns a touch mapping for platforms whose touch origin is the
// bottom-left corner of a surface of the given height.
func FlipY(height float64) func(Vec2) Vec2 {
	return func(p Vec2) Vec2 {
		return Vec2{X: p.X, Y: height - p.Y}
	}
}

// --- Pointer unification ---

// PointerFrame is the unified pointer signal for one tick. Started and Ended
// are independent: a press and release landing in the same tick set both.
type PointerFrame struct {
	Started bool
	Ended   bool
	Held    bool

	// Position is the last known pointer position in intersector space.
	Position    Vec2
	HasPosition bool
}

// pointerUnifier merges mouse and touch input into a single logical pointer,
// following one touch identity at a time.
type pointerUnifier struct {
	touchID      uint64
	tracking     bool
	touchStarted bool // a start was already signalled for the current gesture

	position    Vec2
	hasPosition bool

	mapTouch func(Vec2) Vec2
	logf     func(format string, args ...any)
}

func (u *pointerUnifier) setPosition(p Vec2) {
	u.position = p
	u.hasPosition = true
}

// process folds one tick of raw input into a PointerFrame.
func (u *pointerUnifier) process(in *RawInput) PointerFrame {
	var f PointerFrame

	if in.CursorMoved {
		u.setPosition(in.Cursor)
	}

	for i := range in.Touches {
		ev := &in.Touches[i]
		if u.tracking && ev.ID != u.touchID {
			if u.logf != nil {
				u.logf("ignoring touch %d (%s) while tracking touch %d", ev.ID, ev.Phase, u.touchID)
			}
			continue
		}

		pos := ev.Position
		if u.mapTouch != nil {
			pos = u.mapTouch(pos)
		}

		switch ev.Phase {
		case TouchStarted, TouchMoved:
			// A move on an untracked gesture counts as its start, for
			// surfaces that only register a hit once the finger moves.
			u.touchID = ev.ID
			u.tracking = true
			u.setPosition(pos)
			if !u.touchStarted {
				u.touchStarted = true
				f.Started = true
			}
		case TouchEnded, TouchCancelled:
			if !u.tracking {
				continue
			}
			u.setPosition(pos)
			u.tracking = false
			u.touchStarted = false
			f.Ended = true
		}
	}

	f.Started = f.Started || in.MouseJustPressed
	f.Ended = f.Ended || in.MouseJustReleased
	f.Held = in.MousePressed || u.tracking
	f.Position = u.position
	f.HasPosition = u.hasPosition
	return f
}

// TrackedTouch returns the touch identity currently followed, if any.
func (p *Plugin) TrackedTouch() (uint64, bool) {
	return p.pointer.touchID, p.pointer.tracking
}
