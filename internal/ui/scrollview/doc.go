// Package scrollview provides the Bubble Tea scroll containers of the catalogue.
//
// Every container composes one Scrollable: an animated scroll surface, a controller bound to
// it while mounted and a bubbles viewport that renders the visible window. Containers differ
// only in how they lay their children out:
//
//   - ListView stacks items along its axis
//   - GridView places items in fixed cells
//   - PageView shows one page at a time and keeps a paging.Navigator in step with the offset
//   - NestedScrollView collapses a header before scrolling its body
//   - CustomScrollView stacks slivers under a pinned app bar
//   - SingleChildScrollView scrolls one large child
//
// Callers drive containers from outside through a scroll.Handle (or paging.Handle) passed in
// the options; the container publishes its controller into it on Mount and withdraws it on
// Unmount. Animation frames arrive as FrameMsg values, so the host model must forward every
// message to the container's Update and return the resulting command.
package scrollview
