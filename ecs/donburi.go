// Package ecs provides ECS adapters for footlight.
package ecs

import (
	"sort"

	"github.com/phanxgames/footlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// RenderableData attaches a footlight sprite to a Donburi entity. Layer
// orders draws within DrawWorld: lower layers draw first and end up behind
// higher ones.
type RenderableData struct {
	Sprite *footlight.Sprite
	Layer  int
}

// Renderable is the Donburi component type for RenderableData.
var Renderable = donburi.NewComponentType[RenderableData]()

var renderQuery = donburi.NewQuery(filter.Contains(Renderable))

// DrawWorld draws every entity carrying a Renderable component through r,
// lowest layer first. Entities with a nil sprite are skipped. Entities on
// the same layer keep their world iteration order.
func DrawWorld(w donburi.World, r footlight.Renderer) {
	var items []*RenderableData
	renderQuery.Each(w, func(entry *donburi.Entry) {
		items = append(items, Renderable.Get(entry))
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Layer < items[j].Layer
	})
	for _, item := range items {
		if item.Sprite == nil {
			continue
		}
		r.DrawChild(item.Sprite)
	}
}
