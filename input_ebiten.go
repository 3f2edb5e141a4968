package shapedraw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput reads the left mouse button, cursor and touch screen from
// ebiten. It must be polled from within ebiten's Update.
type EbitenInput struct {
	cursor     Vec2
	cursorSeen bool

	justPressed  []ebiten.TouchID
	held         []ebiten.TouchID
	justReleased []ebiten.TouchID
}

// NewEbitenInput returns an InputSource backed by ebiten.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// ReadInput implements InputSource.
func (e *EbitenInput) ReadInput(in *RawInput) {
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{X: float64(mx), Y: float64(my)}
	if !e.cursorSeen || cursor != e.cursor {
		in.Cursor = cursor
		in.CursorMoved = true
		e.cursor = cursor
		e.cursorSeen = true
	}

	in.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.MouseJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	in.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	e.justPressed = inpututil.AppendJustPressedTouchIDs(e.justPressed[:0])
	for _, id := range e.justPressed {
		in.Touches = append(in.Touches, TouchEvent{ID: uint64(id), Position: touchPosition(id), Phase: TouchStarted})
	}

	e.held = ebiten.AppendTouchIDs(e.held[:0])
	for _, id := range e.held {
		if containsTouch(e.justPressed, id) {
			continue
		}
		px, py := inpututil.TouchPositionInPreviousTick(id)
		x, y := ebiten.TouchPosition(id)
		if px == x && py == y {
			continue
		}
		in.Touches = append(in.Touches, TouchEvent{ID: uint64(id), Position: touchPosition(id), Phase: TouchMoved})
	}

	e.justReleased = inpututil.AppendJustReleasedTouchIDs(e.justReleased[:0])
	for _, id := range e.justReleased {
		px, py := inpututil.TouchPositionInPreviousTick(id)
		in.Touches = append(in.Touches, TouchEvent{
			ID:       uint64(id),
			Position: Vec2{X: float64(px), Y: float64(py)},
			Phase:    TouchEnded,
		})
	}
}

func touchPosition(id ebiten.TouchID) Vec2 {
	x, y := ebiten.TouchPosition(id)
	return Vec2{X: float64(x), Y: float64(y)}
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}
