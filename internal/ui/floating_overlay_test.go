package ui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/overlay"
	"github.com/ytget/livepip/internal/playback"
	"github.com/ytget/livepip/internal/session"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// trackedView is a video surface that records whether it was released.
type trackedView struct {
	*canvas.Rectangle
	released bool
}

func (v *trackedView) Release() { v.released = true }

type viewTracker struct {
	views []*trackedView
}

func (vt *viewTracker) build(playback.Player) fyne.CanvasObject {
	v := &trackedView{Rectangle: canvas.NewRectangle(color.Black)}
	vt.views = append(vt.views, v)
	return v
}

type overlayHarness struct {
	layer   *FloatingOverlay
	store   *session.Manager
	driver  *anim.Driver
	returns []string
	now     time.Time
}

func newOverlayHarness(t *testing.T) *overlayHarness {
	t.Helper()
	a := test.NewApp()
	a.Settings().SetTheme(NewCompactTheme())

	h := &overlayHarness{
		store:  session.NewManager(nil, nil),
		driver: anim.NewDriver(),
		now:    t0,
	}
	ctrl := overlay.NewController(h.store, h.driver, func(id string) { h.returns = append(h.returns, id) })
	h.layer = NewFloatingOverlay(ctrl, nil)
	test.WidgetRenderer(h.layer)
	h.layer.Resize(fyne.NewSize(400, 800))
	return h
}

func (h *overlayHarness) advance(d time.Duration) {
	end := h.now.Add(d)
	for {
		h.driver.Advance(h.now)
		if h.now.After(end) {
			return
		}
		h.now = h.now.Add(anim.FrameInterval)
	}
}

func TestFloatingOverlay_HiddenWithoutSession(t *testing.T) {
	h := newOverlayHarness(t)

	assert.False(t, h.layer.panel.Visible())
	assert.False(t, h.layer.trash.Visible())
}

func TestFloatingOverlay_PlacesPanel(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))

	require.True(t, h.layer.panel.Visible())
	assert.Equal(t, fyne.NewPos(184, 671.5), h.layer.panel.Position())
	assert.Equal(t, fyne.NewSize(200, 112.5), h.layer.panel.Size())
	assert.Len(t, h.layer.panel.video.Objects, 1)
}

func TestFloatingOverlay_TapReturns(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))

	h.layer.panel.Tapped(&fyne.PointEvent{})
	assert.Equal(t, []string{"naddr1live"}, h.returns)
}

func TestFloatingOverlay_DragToTrashDismisses(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))

	h.layer.panel.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-84, -23.75)})
	h.advance(150 * time.Millisecond)
	require.True(t, h.layer.trash.Visible(), "trash shows while dragging")
	assert.Equal(t, themeColor(ColorNameTrashActive), h.layer.trash.FillColor)
	assert.Equal(t, fyne.NewSize(72, 72), h.layer.trash.Size())

	h.layer.panel.DragEnd()

	h.advance(100 * time.Millisecond)
	mid := h.layer.panel.Size()
	assert.Less(t, mid.Width, float32(200), "panel shrinks while dismissing")
	assert.Less(t, h.layer.trash.Size().Width, float32(72), "trash shrinks away")
	assert.NotNil(t, h.store.Current())

	h.advance(300 * time.Millisecond)
	assert.Nil(t, h.store.Current())
	assert.False(t, h.layer.panel.Visible())
	assert.Empty(t, h.returns)
}

func TestFloatingOverlay_TrashIdleColour(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))

	h.layer.panel.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-100, -300)})
	h.advance(150 * time.Millisecond)
	assert.Equal(t, themeColor(ColorNameTrash), h.layer.trash.FillColor)
	assert.Equal(t, fyne.NewSize(56, 56), h.layer.trash.Size())

	h.layer.panel.TouchCancel(nil)
	h.advance(300 * time.Millisecond)
	assert.False(t, h.layer.trash.Visible())
	assert.NotNil(t, h.store.Current())
}

func TestFloatingOverlay_TrashFadesIn(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))

	h.layer.panel.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-100, -300)})
	assert.False(t, h.layer.trash.Visible(), "nothing drawn before the first frame")

	h.advance(50 * time.Millisecond)
	require.True(t, h.layer.trash.Visible())
	size := h.layer.trash.Size().Width
	assert.Greater(t, size, float32(0))
	assert.Less(t, size, float32(56))

	_, _, _, alpha := h.layer.trash.FillColor.RGBA()
	_, _, _, full := themeColor(ColorNameTrash).RGBA()
	assert.Less(t, alpha, full, "partially grown trash is translucent")
}

func TestFloatingOverlay_TogglePlayback(t *testing.T) {
	h := newOverlayHarness(t)
	h.store.Start("naddr1live", playback.NewPlaceholder("Sunday jam"))
	require.True(t, h.store.BackgroundPlayback())

	test.Tap(h.layer.panel.toggle)

	assert.False(t, h.store.BackgroundPlayback())
	assert.False(t, h.layer.panel.toggleOn)
	assert.Empty(t, h.returns, "toggle is not a tap on the panel")
}

func TestFloatingOverlay_ReleasesReplacedViews(t *testing.T) {
	test.NewApp()
	store := session.NewManager(nil, nil)
	var views viewTracker
	layer := NewFloatingOverlay(overlay.NewController(store, anim.NewDriver(), nil), views.build)
	test.WidgetRenderer(layer)
	layer.Resize(fyne.NewSize(400, 800))

	store.Start("naddr1first", playback.NewPlaceholder("first"))
	store.Start("naddr1second", playback.NewPlaceholder("second"))
	require.Len(t, views.views, 2)
	assert.True(t, views.views[0].released, "replaced session lets go of its player")
	assert.False(t, views.views[1].released)

	store.Clear()
	assert.True(t, views.views[1].released)
}
