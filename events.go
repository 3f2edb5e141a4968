package shapedraw

import (
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DrawShapeEventKind identifies a transition in a shape's drawing lifecycle.
type DrawShapeEventKind uint8

const (
	ShapeSpawned   DrawShapeEventKind = iota // a new shape entity was created
	ShapeRedrawing                           // an existing shape is being redrawn
	ShapeFinished                            // the pointer was released; the shape is final
)

func (k DrawShapeEventKind) String() string {
	switch k {
	case ShapeSpawned:
		return "Spawned"
	case ShapeRedrawing:
		return "Redrawing"
	case ShapeFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// DrawShapeEvent reports a lifecycle transition for Entity. Events are
// delivered one tick after the input that caused them, so Entity and its
// components are in place by the time an observer reads the event.
type DrawShapeEvent struct {
	Kind   DrawShapeEventKind
	Entity donburi.Entity
}

func (e DrawShapeEvent) String() string {
	return fmt.Sprintf("%s(%v)", e.Kind, e.Entity)
}

// DrawShapeEventType is the Donburi event type lifecycle events are published
// to. Subscribe to it in ECS systems; the plugin processes it during its
// flush, so subscribers run inside Update.
var DrawShapeEventType = events.NewEventType[DrawShapeEvent]()

// --- Sequencer ---

// eventSequencer holds events for exactly one tick. Events enqueued during
// tick N move to ready at the start of tick N+1 and are emitted in FIFO order.
type eventSequencer struct {
	pending []DrawShapeEvent
	ready   []DrawShapeEvent
}

func (q *eventSequencer) enqueue(ev DrawShapeEvent) {
	q.pending = append(q.pending, ev)
}

// swap makes the previous tick's events ready and starts an empty pending
// queue, reusing the old ready buffer.
func (q *eventSequencer) swap() []DrawShapeEvent {
	q.ready, q.pending = q.pending, q.ready[:0]
	return q.ready
}

// --- Handler registry ---

type drawShapeHandler struct {
	id uint32
	fn func(DrawShapeEvent)
}

type handlerRegistry struct {
	drawShape []drawShapeHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	i := slices.IndexFunc(h.reg.drawShape, func(d drawShapeHandler) bool { return d.id == h.id })
	if i < 0 {
		return
	}
	// The registry gets a fresh slice; a flush in progress keeps ranging over
	// the old one.
	h.reg.drawShape = slices.Delete(slices.Clone(h.reg.drawShape), i, i+1)
}

// OnDrawShape registers a callback for lifecycle events. Callbacks run at the
// start of Update, before any input is processed, in registration order.
func (p *Plugin) OnDrawShape(fn func(DrawShapeEvent)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.drawShape = append(p.handlers.drawShape, drawShapeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers}
}

// Events returns the lifecycle events delivered during the current tick.
// The slice is only valid until the next Update.
func (p *Plugin) Events() []DrawShapeEvent {
	return p.events.ready
}

// flushEvents delivers the previous tick's events to callbacks and the
// Donburi event bus.
func (p *Plugin) flushEvents() {
	ready := p.events.swap()
	if len(ready) == 0 {
		return
	}
	for _, ev := range ready {
		p.debugf("event %s", ev)
		// Handlers registered or removed by a callback take effect with the
		// next event.
		for _, h := range p.handlers.drawShape {
			h.fn(ev)
		}
		DrawShapeEventType.Publish(p.world, ev)
	}
	DrawShapeEventType.ProcessEvents(p.world)
}
