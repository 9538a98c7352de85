// Package ecs provides ECS adapters for thicket's routed input events.
//
// The primary adapter is [NewDonburiStore], which forwards every routed event
// (enter, exit, move, button, scroll, key, char) whose target control carries a
// non-zero EntityID into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	root.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
