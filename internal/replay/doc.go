// Package replay runs scripted sequences of scroll and page commands against a headless paged
// surface and records every page change.
//
// A script is a YAML document:
//
//	name: swipe past the end
//	pages: 5
//	page_extent: 300
//	steps:
//	  - op: user_scroll
//	    x: 620
//	  - op: expect_page
//	    page: 2
//	  - op: next_page
//	  - op: frames
//
// Time is simulated: every animation frame and every wait step advances a fake clock, so settle
// timeouts behave the same on every run.
package replay
