package shapedraw

import (
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// DrawingboardRequest asks the plugin to spawn or remove the drawing board,
// a large flat surface to draw on.
type DrawingboardRequest struct {
	Despawn bool
	// Height is the Y the board is spawned at.
	Height float64
}

// SpawnDrawingboard requests a board at the given height. Ignored if a board
// already exists.
func SpawnDrawingboard(height float64) DrawingboardRequest {
	return DrawingboardRequest{Height: height}
}

// DespawnDrawingboard requests removal of the board. Ignored if there is none.
var DespawnDrawingboard = DrawingboardRequest{Despawn: true}

// RequestDrawingboard queues a board request. Requests are processed during
// Update when Options.EnableDrawingboard is set and dropped otherwise.
func (p *Plugin) RequestDrawingboard(req DrawingboardRequest) {
	p.boardRequests = append(p.boardRequests, req)
}

// Drawingboard returns the board entity, if one exists.
func (p *Plugin) Drawingboard() (donburi.Entity, bool) {
	entry, ok := drawingboardQuery.First(p.world)
	if !ok {
		return 0, false
	}
	return entry.Entity(), true
}

func (p *Plugin) processDrawingboard() {
	if !p.opts.EnableDrawingboard {
		p.boardRequests = p.boardRequests[:0]
		return
	}
	for _, req := range p.boardRequests {
		if req.Despawn {
			p.despawnDrawingboard()
		} else {
			p.spawnDrawingboard(req.Height)
		}
	}
	p.boardRequests = p.boardRequests[:0]
}

// spawnDrawingboard places the board below the camera at the requested height.
func (p *Plugin) spawnDrawingboard(height float64) {
	if drawingboardQuery.Count(p.world) > 0 {
		return
	}
	var center Vec3
	if p.opts.Camera != nil {
		center.X = p.opts.Camera.Eye.X
		center.Z = p.opts.Camera.Eye.Z
	}
	center.Y = height

	res := p.opts.Drawingboard
	mat := &Material{Color: res.Color, Blend: BlendNormal}
	mat.Color.A = 0
	e := SpawnSurface(p.world, center, res.Size, mat)
	p.world.Entry(e).AddComponent(DrawingboardTag)
	p.boardFade = FadeAlpha(mat, res.Color.A, res.FadeSeconds, ease.OutQuad)

	p.logf("spawning drawingboard at %v", center)
}

func (p *Plugin) despawnDrawingboard() {
	e, ok := p.Drawingboard()
	if !ok {
		return
	}
	p.world.Remove(e)
	p.boardFade = nil
}

func (p *Plugin) updateDrawingboard(dt float32) {
	if p.boardFade == nil {
		return
	}
	p.boardFade.Update(dt)
	if p.boardFade.Done {
		p.boardFade = nil
	}
}
