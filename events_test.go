package shapedraw

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestSequencerDelaysOneTick(t *testing.T) {
	var q eventSequencer
	a := DrawShapeEvent{Kind: ShapeSpawned, Entity: 1}
	b := DrawShapeEvent{Kind: ShapeFinished, Entity: 1}

	q.enqueue(a)
	q.enqueue(b)
	if len(q.ready) != 0 {
		t.Fatal("events ready before swap")
	}

	got := q.swap()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("swap = %v, want [%v %v]", got, a, b)
	}

	// Events enqueued after the swap wait for the next one.
	q.enqueue(a)
	if len(q.ready) != 2 {
		t.Errorf("ready changed by enqueue: %v", q.ready)
	}
	if got := q.swap(); len(got) != 1 {
		t.Errorf("second swap = %v, want 1 event", got)
	}
	if got := q.swap(); len(got) != 0 {
		t.Errorf("third swap = %v, want none", got)
	}
}

func TestEventsVisibleForOneTick(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	p.InjectPress(1, 1)

	p.Update()
	if len(p.Events()) != 0 {
		t.Fatalf("Events in spawning tick = %v", p.Events())
	}
	p.Update()
	if got := p.Events(); len(got) != 1 || got[0].Kind != ShapeSpawned {
		t.Fatalf("Events = %v, want [Spawned]", got)
	}
	p.Update()
	if len(p.Events()) != 0 {
		t.Errorf("Events after delivery tick = %v, want none", p.Events())
	}
}

func TestEventEntityExistsAtDelivery(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var checked int
	p.OnDrawShape(func(ev DrawShapeEvent) {
		checked++
		if !p.world.Valid(ev.Entity) {
			t.Errorf("%v: entity does not exist", ev)
			return
		}
		entry := p.world.Entry(ev.Entity)
		if !entry.HasComponent(TransformComponent) || !entry.HasComponent(ShapeComponent) {
			t.Errorf("%v: components missing at delivery", ev)
		}
	})

	p.InjectDrag(1, 1, 2, 2, 2)
	updateN(p, 3)
	if checked != 2 {
		t.Errorf("handler ran %d times, want 2", checked)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var first, second int
	h := p.OnDrawShape(func(DrawShapeEvent) { first++ })
	p.OnDrawShape(func(DrawShapeEvent) { second++ })

	p.InjectPress(1, 1)
	updateN(p, 2)
	h.Remove()
	h.Remove() // second Remove is a no-op

	p.InjectRelease(1, 1)
	updateN(p, 2)

	if first != 1 {
		t.Errorf("removed handler ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining handler ran %d times, want 2", second)
	}
}

func TestHandlerRemovesItselfDuringFlush(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var once, second, third int
	var h CallbackHandle
	h = p.OnDrawShape(func(DrawShapeEvent) {
		once++
		h.Remove()
	})
	p.OnDrawShape(func(DrawShapeEvent) { second++ })
	p.OnDrawShape(func(DrawShapeEvent) { third++ })

	p.InjectDrag(1, 1, 3, 3, 2)
	updateN(p, 2) // Spawned delivered

	if once != 1 || second != 1 || third != 1 {
		t.Fatalf("after Spawned: once=%d second=%d third=%d, want 1 1 1", once, second, third)
	}

	p.Update() // Finished delivered
	if once != 1 || second != 2 || third != 2 {
		t.Errorf("after Finished: once=%d second=%d third=%d, want 1 2 2", once, second, third)
	}
}

func TestHandlerRegisteredDuringFlushSeesNextEvent(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var late []DrawShapeEventKind
	registered := false
	p.OnDrawShape(func(DrawShapeEvent) {
		if registered {
			return
		}
		registered = true
		p.OnDrawShape(func(ev DrawShapeEvent) { late = append(late, ev.Kind) })
	})

	p.InjectDrag(1, 1, 3, 3, 2)
	updateN(p, 3)

	if len(late) != 1 || late[0] != ShapeFinished {
		t.Errorf("late handler saw %v, want [Finished]", late)
	}
}

func TestCallbackHandleZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var order []int
	for i := range 3 {
		p.OnDrawShape(func(DrawShapeEvent) { order = append(order, i) })
	}
	p.InjectPress(1, 1)
	updateN(p, 2)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestDonburiEventBus(t *testing.T) {
	p := newTestPlugin(testOptions(true))
	var received []DrawShapeEvent
	DrawShapeEventType.Subscribe(p.world, func(_ donburi.World, ev DrawShapeEvent) {
		received = append(received, ev)
	})

	p.InjectDrag(1, 1, 3, 3, 2)
	p.Update()
	if len(received) != 0 {
		t.Fatalf("bus delivered %v in the spawning tick", received)
	}
	updateN(p, 2)

	if len(received) != 2 || received[0].Kind != ShapeSpawned || received[1].Kind != ShapeFinished {
		t.Errorf("received = %v, want [Spawned Finished]", received)
	}
}

func TestDrawShapeEventString(t *testing.T) {
	for _, k := range []DrawShapeEventKind{ShapeSpawned, ShapeRedrawing, ShapeFinished, 9} {
		if k.String() == "" {
			t.Errorf("DrawShapeEventKind(%d).String() is empty", k)
		}
	}
	if DrawShapeEventKind(9).String() != "Unknown" {
		t.Errorf("unknown kind = %q", DrawShapeEventKind(9).String())
	}
}
