// Package paging layers a discrete page index on top of a scroll.Controller.
//
// A Navigator translates in both directions: scroll events of the surface become page
// changes (candidate = round(offset / pageExtent), clamped to the page range), and page
// commands (SetPage, NextPage, PreviousPage) become scroll commands targeting
// index * pageExtent. After a command, scroll events are ignored until the surface settles
// near the target or the settle timeout elapses, so the animation of a programmatic scroll
// never produces extra page changes.
//
// Exactly one OnPageChanged callback fires per net index change. With zero pages every
// command is a no-op and CurrentPage returns NoPage.
package paging
