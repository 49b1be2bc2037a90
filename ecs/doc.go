// Package ecs provides ECS adapters for footlight's renderer.
//
// The primary adapter is the [Renderable] component, which attaches a
// footlight sprite and a draw layer to a [Donburi] entity. [DrawWorld] walks
// every renderable entity in layer order and hands it to a renderer.
//
// Usage:
//
//	entity := world.Create(ecs.Renderable)
//	ecs.Renderable.SetValue(world.Entry(entity), ecs.RenderableData{
//		Sprite: sprite,
//		Layer:  1,
//	})
//	ecs.DrawWorld(world, renderer)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
