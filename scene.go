package shapedraw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Options configures a Plugin.
type Options struct {
	// AlwaysEnabled re-enables drawing whenever it is observed disabled at
	// tick start. A caller must then disable drawing every tick to keep it off.
	AlwaysEnabled bool
	// EnableDrawingboard processes drawing board requests.
	EnableDrawingboard bool
	// Debug logs state transitions, events and ignored input to stderr.
	Debug bool

	Resources    Resources
	Drawingboard DrawingboardResources

	// Camera is used for the default Raycaster, to place the drawing board
	// and is advanced each tick. May be nil when Intersector is set.
	Camera *Camera3D
	// Intersector resolves pointer positions to surface hits. Nil means a
	// Raycaster over Camera.
	Intersector Intersector
	// Input supplies raw pointer input. Nil means ebiten.
	Input InputSource
	// MapTouch converts touch positions into intersector space. Nil means
	// touch positions are used as is.
	MapTouch func(Vec2) Vec2
}

// DefaultOptions returns options with drawing always enabled, the drawing
// board enabled and default resources.
func DefaultOptions() Options {
	return Options{
		AlwaysEnabled:      true,
		EnableDrawingboard: true,
		Resources:          DefaultResources(),
		Drawingboard:       DefaultDrawingboardResources(),
	}
}

// Plugin lets a pointer draw and reshape boxes on the surfaces of a Donburi
// world. Call Update once per tick.
type Plugin struct {
	world donburi.World
	opts  Options
	res   Resources
	debug bool
	tick  uint64

	intersector   Intersector
	input         InputSource
	raw           RawInput
	pointer       pointerUnifier
	injectQueue   []syntheticInput
	injectPressed bool

	state    DrawingState
	requests requestQueue

	events   eventSequencer
	handlers handlerRegistry

	boardRequests []DrawingboardRequest
	boardFade     *AlphaFade

	testRunner      *TestRunner
	screenshotQueue []string

	editBuf []donburi.Entity
}

// New creates a Plugin drawing into world. Drawing starts Disabled; with
// AlwaysEnabled it becomes Idle during the first Update.
func New(world donburi.World, opts Options) *Plugin {
	if opts.Resources.Material == nil {
		opts.Resources.Material = DefaultResources().Material
	}
	if opts.Resources.InitialSize <= 0 {
		opts.Resources.InitialSize = DefaultResources().InitialSize
	}
	if opts.Resources.InitialHeight <= 0 {
		opts.Resources.InitialHeight = DefaultResources().InitialHeight
	}
	if opts.Drawingboard.Size <= 0 {
		opts.Drawingboard = DefaultDrawingboardResources()
	}

	p := &Plugin{
		world:       world,
		opts:        opts,
		res:         opts.Resources,
		intersector: opts.Intersector,
		input:       opts.Input,
	}
	if p.intersector == nil && opts.Camera != nil {
		p.intersector = NewRaycaster(world, opts.Camera)
	}
	if p.input == nil {
		p.input = NewEbitenInput()
	}
	p.pointer.mapTouch = opts.MapTouch
	p.SetDebugMode(opts.Debug)
	return p
}

// World returns the Donburi world the plugin draws into.
func (p *Plugin) World() donburi.World {
	return p.world
}

// Resources returns the resources used for new boxes.
func (p *Plugin) Resources() Resources {
	return p.res
}

// Tick returns the number of completed Update calls.
func (p *Plugin) Tick() uint64 {
	return p.tick
}

// Update runs one tick. The order is fixed:
//
//	requests due -> event flush -> test runner -> input -> auto-enable ->
//	state transitions -> drawing board -> box editor -> animations
//
// Events enqueued by the editor in this tick are delivered by the next one.
func (p *Plugin) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	p.requests.swap()
	p.flushEvents()

	if p.testRunner != nil {
		p.testRunner.step(p)
	}

	p.raw.reset()
	if !p.readInjectedInput(&p.raw) {
		p.input.ReadInput(&p.raw)
	}
	frame := p.pointer.process(&p.raw)

	if p.opts.AlwaysEnabled {
		p.keepEnabled()
	}
	p.applyRequests()

	p.processDrawingboard()
	p.editBoxes(frame)

	if p.opts.Camera != nil {
		p.opts.Camera.update(dt)
	}
	p.updateDrawingboard(dt)

	p.tick++
}

// Screenshot queues a labeled screenshot for the renderer to capture at the
// end of its next Draw.
func (p *Plugin) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// TakeScreenshotRequests returns the queued screenshot labels and clears the
// queue.
func (p *Plugin) TakeScreenshotRequests() []string {
	if len(p.screenshotQueue) == 0 {
		return nil
	}
	labels := append([]string(nil), p.screenshotQueue...)
	p.screenshotQueue = p.screenshotQueue[:0]
	return labels
}
