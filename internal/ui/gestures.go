package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/livepip/internal/overlay"
)

// pointerTarget is the part of the overlay controller driven by pointer input
type pointerTarget interface {
	Press() bool
	Move(overlay.Batch) bool
	Release()
	Cancel()
}

// GestureAdapter turns Fyne's per-event callbacks (drag, tap, scroll, touch
// cancel) into press/move/release sequences for the overlay controller
type GestureAdapter struct {
	target  pointerTarget
	pressed bool
}

// NewGestureAdapter creates an adapter feeding target
func NewGestureAdapter(target pointerTarget) *GestureAdapter {
	return &GestureAdapter{target: target}
}

// Active reports whether a sequence is in progress
func (ga *GestureAdapter) Active() bool {
	return ga.pressed
}

// Dragged starts a sequence on the first drag event and pans the panel
func (ga *GestureAdapter) Dragged(ev *fyne.DragEvent) {
	if !ga.pressed {
		if ga.pressed = ga.target.Press(); !ga.pressed {
			return
		}
	}
	ga.target.Move(overlay.Batch{Pan: ev.Dragged})
}

// DragEnd releases the current sequence
func (ga *GestureAdapter) DragEnd() {
	if !ga.pressed {
		return
	}
	ga.pressed = false
	ga.target.Release()
}

// Tapped runs a press/release pair with no movement
func (ga *GestureAdapter) Tapped() {
	if ga.pressed {
		return
	}
	if ga.target.Press() {
		ga.target.Release()
	}
}

// Scrolled treats a scroll wheel step as a pinch. Outside a drag it is a
// sequence of its own, which ends without tapping or bouncing.
func (ga *GestureAdapter) Scrolled(ev *fyne.ScrollEvent) {
	b := overlay.Batch{Zoom: ZoomForScroll(ev.Scrolled.DY)}
	if !b.HasPinch() {
		return
	}
	if ga.pressed {
		ga.target.Move(b)
		return
	}
	if ga.target.Press() {
		ga.target.Move(b)
		ga.target.Release()
	}
}

// Cancel abandons the current sequence
func (ga *GestureAdapter) Cancel() {
	if !ga.pressed {
		return
	}
	ga.pressed = false
	ga.target.Cancel()
}

// ZoomForScroll maps a vertical scroll delta to a zoom factor. Scrolling up
// (positive DY in Fyne) grows the panel.
func ZoomForScroll(dy float32) float32 {
	z := 1 + dy*ScrollZoomStep
	if z < ScrollZoomMin {
		return ScrollZoomMin
	}
	if z > ScrollZoomMax {
		return ScrollZoomMax
	}
	return z
}
