// Package ecs provides ECS adapters for reveal's widget events.
//
// The primary adapter is [NewDonburiStore], which publishes widget events
// (press, tap, slide selection and autoplay transitions) into a [Donburi]
// world as typed events. Subscribe to [WidgetEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	widget := reveal.New(catalog, elements, reveal.WithEventStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
