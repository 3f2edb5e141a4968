package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/shapedraw"
)

// History records what happened to a shape since it was spawned.
type History struct {
	// Redraws counts how many times the shape was picked up again.
	Redraws int
	// Finished is false while the shape is being edited.
	Finished bool
	// LastEvent is the most recent lifecycle event seen for the shape.
	LastEvent shapedraw.DrawShapeEventKind
}

// HistoryComponent is attached to shapes by Track.
var HistoryComponent = donburi.NewComponentType[History]()

var historyQuery = donburi.NewQuery(filter.Contains(HistoryComponent))

// Track subscribes to shapedraw lifecycle events on world and keeps a History
// component on every shape they mention. Call it once per world. Events for
// entities that no longer exist are ignored.
func Track(world donburi.World) {
	shapedraw.DrawShapeEventType.Subscribe(world, record)
}

func record(world donburi.World, ev shapedraw.DrawShapeEvent) {
	if !world.Valid(ev.Entity) {
		return
	}
	entry := world.Entry(ev.Entity)
	if !entry.HasComponent(HistoryComponent) {
		entry.AddComponent(HistoryComponent)
	}
	h := HistoryComponent.Get(entry)
	switch ev.Kind {
	case shapedraw.ShapeSpawned:
		*h = History{}
	case shapedraw.ShapeRedrawing:
		h.Redraws++
		h.Finished = false
	case shapedraw.ShapeFinished:
		h.Finished = true
	}
	h.LastEvent = ev.Kind
}

// HistoryOf returns the history of e, if Track has recorded one.
func HistoryOf(world donburi.World, e donburi.Entity) (History, bool) {
	if !world.Valid(e) {
		return History{}, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(HistoryComponent) {
		return History{}, false
	}
	return HistoryComponent.GetValue(entry), true
}

// FinishedShapes calls fn for every tracked shape that is not being edited.
func FinishedShapes(world donburi.World, fn func(*donburi.Entry)) {
	historyQuery.Each(world, func(entry *donburi.Entry) {
		if HistoryComponent.Get(entry).Finished {
			fn(entry)
		}
	})
}

// CountFinished returns how many tracked shapes are finished.
func CountFinished(world donburi.World) int {
	n := 0
	FinishedShapes(world, func(*donburi.Entry) { n++ })
	return n
}
