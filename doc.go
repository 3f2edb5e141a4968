// Package shapedraw lets a player draw axis-aligned boxes onto the surfaces of
// a 3D scene with a mouse or a single finger, for [Ebitengine] games built on
// a [Donburi] world.
//
// # Quick start
//
// Spawn something to draw on, create a camera and a Plugin, and call
// [Plugin.Update] once per tick:
//
//	world := donburi.NewWorld()
//	shapedraw.SpawnSurface(world, shapedraw.Vec3{}, 5, groundMaterial)
//
//	cam := shapedraw.NewCamera3D(eye, shapedraw.Vec3{}, shapedraw.Rect{Width: 800, Height: 600})
//	opts := shapedraw.DefaultOptions()
//	opts.Camera = cam
//	plugin := shapedraw.New(world, opts)
//
// The render subpackage draws the world and can run the game loop:
//
//	render.Run(plugin, render.New(cam), render.RunConfig{Title: "draw", Width: 800, Height: 600})
//
// # Drawing
//
// Pressing on a surface spawns a thin box whose minimum corner sits on the
// hit point. While the pointer is held the box is stretched on the
// horizontal plane between that corner and the point under the pointer.
// Releasing finishes the box. Only one box is edited at a time.
//
// Mouse and touch input are merged into one logical pointer. Only the first
// finger of a gesture is followed; other fingers are ignored until it lifts.
//
// # Drawing state
//
// The editor is gated by a [DrawingState]: Disabled ignores input, Idle
// spawns new boxes, and Idle with a target redraws an existing entity.
// Change it with [Plugin.Request] and [EnableDrawing], [DisableDrawing] or
// [RedrawShape]. With [Options.AlwaysEnabled] drawing is re-enabled at the
// start of every tick it is found disabled.
//
// # Events
//
// Every box reports [ShapeSpawned] or [ShapeRedrawing] when editing starts
// and [ShapeFinished] when it ends. Events are delivered one tick after the
// input that caused them, so the entity's components are already in place.
// Observe them with [Plugin.OnDrawShape], [Plugin.Events] or by subscribing
// to [DrawShapeEventType] in Donburi systems.
//
// # Drawing board
//
// [SpawnDrawingboard] places a large translucent surface below the camera
// that fades in with [gween]; [DespawnDrawingboard] removes it.
//
// # Configuration
//
// [LoadConfig] reads YAML settings, validated against a JSON schema, and
// [Config.Options] turns them into plugin options.
//
// # Testing
//
// Input can be injected with [Plugin.InjectPress], [Plugin.InjectDrag] and
// [Plugin.InjectTouch], or replayed from a JSON script with
// [LoadTestScript]. Tests can replace ebiten input entirely through
// [Options.Input] and the raycaster through [Options.Intersector].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package shapedraw
