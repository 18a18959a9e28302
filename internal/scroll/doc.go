// Package scroll provides the imperative scroll controller shared by every scroll container.
//
// A container owns a Surface (the viewport/content pair that actually has an offset), mounts
// it on a Binding and hands out a Controller bound to it:
//
//	binding := scroll.NewBinding()
//	binding.Mount(scroll.NewStaticSurface(viewport, content))
//	ctrl := scroll.NewController(binding, scroll.AxisVertical)
//	ctrl.ScrollBy(0, 3)
//
// Controllers never cache offsets or extents. Calls made before mount or after unmount are
// silent no-ops, and out-of-range targets are clamped into the surface's extent.
package scroll
