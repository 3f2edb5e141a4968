// Package ecs provides Donburi systems built on shapedraw's lifecycle events.
//
// The main entry point is [Track], which subscribes to
// [shapedraw.DrawShapeEventType] and keeps a [History] component on every
// drawn shape. Other systems can then query finished shapes without
// registering callbacks on the plugin.
//
// Usage:
//
//	ecs.Track(world)
//	plugin := shapedraw.New(world, opts)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
