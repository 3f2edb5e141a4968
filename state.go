package shapedraw

import (
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
)

// DrawingState gates the editor. The zero value is Disabled.
//
// Idle with no target means the next pointer-down spawns a new box. Idle with
// a target means the next pointer-down redraws that entity.
type DrawingState struct {
	idle      bool
	target    donburi.Entity
	hasTarget bool
}

// Disabled reports whether input is currently ignored.
func (s DrawingState) Disabled() bool {
	return !s.idle
}

// Target returns the entity the next drawing will reuse, if any.
func (s DrawingState) Target() (donburi.Entity, bool) {
	return s.target, s.idle && s.hasTarget
}

func (s DrawingState) String() string {
	switch {
	case !s.idle:
		return "Disabled"
	case s.hasTarget:
		return fmt.Sprintf("Idle(%v)", s.target)
	default:
		return "Idle(None)"
	}
}

// DrawStateRequestKind identifies a lifecycle request.
type DrawStateRequestKind uint8

const (
	RequestEnable  DrawStateRequestKind = iota // -> Idle(None)
	RequestRedraw                              // -> Idle(Some(entity))
	RequestDisable                             // -> Disabled
)

func (k DrawStateRequestKind) String() string {
	switch k {
	case RequestEnable:
		return "Enable"
	case RequestRedraw:
		return "Redraw"
	case RequestDisable:
		return "Disable"
	default:
		return "Unknown"
	}
}

// DrawStateRequest asks the drawing state machine to change state.
// Entity is only meaningful for RequestRedraw.
type DrawStateRequest struct {
	Kind   DrawStateRequestKind
	Entity donburi.Entity
}

var (
	// EnableDrawing makes the next pointer-down spawn a new box.
	EnableDrawing = DrawStateRequest{Kind: RequestEnable}
	// DisableDrawing stops the editor from reacting to input.
	DisableDrawing = DrawStateRequest{Kind: RequestDisable}
)

// RedrawShape makes the next pointer-down resume editing e instead of
// spawning a new box.
func RedrawShape(e donburi.Entity) DrawStateRequest {
	return DrawStateRequest{Kind: RequestRedraw, Entity: e}
}

// next returns the state reached by applying req to s.
func (s DrawingState) next(req DrawStateRequest) DrawingState {
	switch req.Kind {
	case RequestEnable:
		return DrawingState{idle: true}
	case RequestRedraw:
		return DrawingState{idle: true, target: req.Entity, hasTarget: true}
	case RequestDisable:
		return DrawingState{}
	default:
		return s
	}
}

// requestQueue collects lifecycle requests. Requests made before a tick starts
// are due in that tick; requests made during a tick wait for the next one.
type requestQueue struct {
	incoming []DrawStateRequest
	due      []DrawStateRequest
}

func (q *requestQueue) push(req DrawStateRequest) {
	q.incoming = append(q.incoming, req)
}

// swap moves incoming requests into the due list, called once at tick start.
func (q *requestQueue) swap() {
	q.due, q.incoming = q.incoming, q.due[:0]
}

// Request queues a lifecycle request. It is applied at the state transition
// step of the next Update that starts after the call.
func (p *Plugin) Request(req DrawStateRequest) {
	p.requests.push(req)
}

// State returns the committed drawing state.
func (p *Plugin) State() DrawingState {
	return p.state
}

// keepEnabled queues an Enable when drawing is observed disabled at tick
// start. Only installed when Options.AlwaysEnabled is set. The Enable goes
// ahead of the caller's requests, so a Redraw or Disable due this tick wins.
func (p *Plugin) keepEnabled() {
	if p.state.Disabled() {
		p.requests.due = slices.Insert(p.requests.due, 0, EnableDrawing)
	}
}

// applyRequests runs every due request through the state machine in arrival
// order.
func (p *Plugin) applyRequests() {
	for _, req := range p.requests.due {
		if req.Kind == RequestDisable {
			p.abandonEdit()
		}
		prev := p.state
		p.state = p.state.next(req)
		if prev != p.state {
			p.debugf("drawing state %s -> %s", prev, p.state)
		}
	}
	p.requests.due = p.requests.due[:0]
}
