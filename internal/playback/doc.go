package playback

// Package playback defines the opaque media handle shared between a live
// stream screen and the floating overlay, plus a placeholder engine used by
// the demo host and tests. Rendering is delegated to a ViewFactory so the
// overlay only positions and sizes whatever surface the host provides.
