package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/livepip/internal/overlay"
)

type recordingTarget struct {
	accept bool
	calls  []string
	moves  []overlay.Batch
}

func (r *recordingTarget) Press() bool {
	r.calls = append(r.calls, "press")
	return r.accept
}

func (r *recordingTarget) Move(b overlay.Batch) bool {
	r.calls = append(r.calls, "move")
	r.moves = append(r.moves, b)
	return true
}

func (r *recordingTarget) Release() { r.calls = append(r.calls, "release") }
func (r *recordingTarget) Cancel()  { r.calls = append(r.calls, "cancel") }

func drag(dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{Dragged: fyne.NewDelta(dx, dy)}
}

func TestGestureAdapter_DragSequence(t *testing.T) {
	target := &recordingTarget{accept: true}
	ga := NewGestureAdapter(target)

	ga.Dragged(drag(5, 0))
	ga.Dragged(drag(0, 7))
	assert.True(t, ga.Active())
	ga.DragEnd()

	assert.Equal(t, []string{"press", "move", "move", "release"}, target.calls)
	assert.Equal(t, fyne.NewDelta(0, 7), target.moves[1].Pan)
	assert.False(t, ga.Active())
}

func TestGestureAdapter_DeclinedPress(t *testing.T) {
	target := &recordingTarget{accept: false}
	ga := NewGestureAdapter(target)

	ga.Dragged(drag(5, 0))
	ga.DragEnd()
	ga.Cancel()

	assert.Equal(t, []string{"press"}, target.calls)
}

func TestGestureAdapter_Tap(t *testing.T) {
	target := &recordingTarget{accept: true}
	ga := NewGestureAdapter(target)

	ga.Tapped()
	assert.Equal(t, []string{"press", "release"}, target.calls)
}

func TestGestureAdapter_CancelDuringDrag(t *testing.T) {
	target := &recordingTarget{accept: true}
	ga := NewGestureAdapter(target)

	ga.Dragged(drag(5, 0))
	ga.Cancel()
	ga.DragEnd()

	assert.Equal(t, []string{"press", "move", "cancel"}, target.calls)
}

func TestGestureAdapter_ScrollIsPinch(t *testing.T) {
	target := &recordingTarget{accept: true}
	ga := NewGestureAdapter(target)

	ga.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 10)})
	assert.Equal(t, []string{"press", "move", "release"}, target.calls)
	assert.True(t, target.moves[0].HasPinch())
	assert.False(t, target.moves[0].HasPan())

	// inside a drag the zoom joins the running sequence
	target.calls = nil
	ga.Dragged(drag(1, 1))
	ga.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -10)})
	ga.DragEnd()
	assert.Equal(t, []string{"press", "move", "move", "release"}, target.calls)

	// horizontal scrolling carries no zoom
	target.calls = nil
	ga.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(10, 0)})
	assert.Empty(t, target.calls)
}

func TestZoomForScroll(t *testing.T) {
	assert.Equal(t, float32(1), ZoomForScroll(0))
	assert.InDelta(t, 1.1, ZoomForScroll(10), 1e-6)
	assert.InDelta(t, 0.9, ZoomForScroll(-10), 1e-6)
	assert.Equal(t, ScrollZoomMax, ZoomForScroll(1000))
	assert.Equal(t, ScrollZoomMin, ZoomForScroll(-1000))
}
