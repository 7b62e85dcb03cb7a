package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/livepip/internal/model"
	"github.com/ytget/livepip/internal/overlay"
	"github.com/ytget/livepip/internal/playback"
)

// minVisibleScale hides the panel at the very end of the dismiss shrink
const minVisibleScale float32 = 0.01

// FloatingOverlay is a window-sized layer that renders the floating panel and
// the trash target. Only the panel itself takes input.
type FloatingOverlay struct {
	widget.BaseWidget

	ctrl  *overlay.Controller
	panel *overlayPanel

	trash     *canvas.Circle
	trashIcon *widget.Icon
}

// NewFloatingOverlay creates the layer for ctrl. views builds the video
// surface of each floating session's player.
func NewFloatingOverlay(ctrl *overlay.Controller, views playback.ViewFactory) *FloatingOverlay {
	if views == nil {
		views = playback.NewPlaceholderView
	}
	fo := &FloatingOverlay{
		ctrl:      ctrl,
		panel:     newOverlayPanel(ctrl, views),
		trash:     canvas.NewCircle(themeColor(ColorNameTrash)),
		trashIcon: widget.NewIcon(theme.DeleteIcon()),
	}
	fo.trash.Hide()
	fo.trashIcon.Hide()
	fo.panel.Hide()
	fo.ExtendBaseWidget(fo)

	ctrl.OnChange(fo.Refresh)
	return fo
}

// CreateRenderer implements fyne.Widget
func (fo *FloatingOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &floatingOverlayRenderer{fo: fo}
}

type floatingOverlayRenderer struct {
	fo *FloatingOverlay
}

func (r *floatingOverlayRenderer) Layout(size fyne.Size) {
	r.fo.ctrl.SetScreenSize(size)
	r.apply()
}

func (r *floatingOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *floatingOverlayRenderer) Refresh() {
	r.apply()
}

func (r *floatingOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fo.trash, r.fo.trashIcon, r.fo.panel}
}

func (r *floatingOverlayRenderer) Destroy() {}

// apply moves the canvas objects to the controller's current state.
func (r *floatingOverlayRenderer) apply() {
	fo := r.fo
	s := fo.ctrl.Snapshot()

	if !s.Visible {
		fo.panel.clear()
		fo.panel.Hide()
		fo.trash.Hide()
		fo.trashIcon.Hide()
		return
	}

	fo.panel.setSession(s.Session)
	fo.panel.setBackgroundPlayback(s.BackgroundPlayback)

	// the dismiss scale shrinks the panel around its centre
	scaled := fyne.NewSize(s.Size.Width*s.Scale, s.Size.Height*s.Scale)
	fo.panel.Move(fyne.NewPos(
		s.Position.X+(s.Size.Width-scaled.Width)/2,
		s.Position.Y+(s.Size.Height-scaled.Height)/2,
	))
	fo.panel.Resize(scaled)
	if s.Scale <= minVisibleScale {
		fo.panel.Hide()
	} else {
		fo.panel.Show()
	}

	d := s.TrashSize
	if d <= 0 {
		fo.trash.Hide()
		fo.trashIcon.Hide()
		return
	}

	// the affordance fades in while it grows to its resting size
	fill := themeColor(ColorNameTrash)
	if s.OverTrash {
		fill = themeColor(ColorNameTrashActive)
	}
	alpha := float32(1)
	if rest := fo.ctrl.Geometry().TrashSize; rest > 0 {
		alpha = d / rest
	}
	fo.trash.FillColor = withAlpha(fill, alpha)
	fo.trash.Move(fyne.NewPos(s.TrashCenter.X-d/2, s.TrashCenter.Y-d/2))
	fo.trash.Resize(fyne.NewSize(d, d))
	fo.trash.Show()
	fo.trash.Refresh()

	icon := d / 2
	fo.trashIcon.Move(fyne.NewPos(s.TrashCenter.X-icon/2, s.TrashCenter.Y-icon/2))
	fo.trashIcon.Resize(fyne.NewSize(icon, icon))
	fo.trashIcon.Show()
}

// overlayPanel is the floating video window. It forwards pointer input to
// the controller through a GestureAdapter.
type overlayPanel struct {
	widget.BaseWidget

	ctrl     *overlay.Controller
	gestures *GestureAdapter
	views    playback.ViewFactory

	sessionID uuid.UUID
	video     *fyne.Container
	toggle    *widget.Button
	toggleOn  bool
	content   *fyne.Container
}

func newOverlayPanel(ctrl *overlay.Controller, views playback.ViewFactory) *overlayPanel {
	p := &overlayPanel{
		ctrl:     ctrl,
		gestures: NewGestureAdapter(ctrl),
		views:    views,
		video:    container.NewStack(),
	}
	p.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ctrl.ToggleBackgroundPlayback)
	p.toggle.Importance = widget.LowImportance
	p.toggleOn = true
	p.content = container.NewStack(
		p.video,
		container.NewVBox(container.NewHBox(layout.NewSpacer(), p.toggle)),
	)
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *overlayPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// MinSize lets the controller own the panel size
func (p *overlayPanel) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// Dragged implements fyne.Draggable
func (p *overlayPanel) Dragged(ev *fyne.DragEvent) {
	p.gestures.Dragged(ev)
}

// DragEnd implements fyne.Draggable
func (p *overlayPanel) DragEnd() {
	p.gestures.DragEnd()
}

// Tapped implements fyne.Tappable
func (p *overlayPanel) Tapped(*fyne.PointEvent) {
	p.gestures.Tapped()
}

// Scrolled implements fyne.Scrollable
func (p *overlayPanel) Scrolled(ev *fyne.ScrollEvent) {
	p.gestures.Scrolled(ev)
}

// TouchDown implements mobile.Touchable
func (p *overlayPanel) TouchDown(*mobile.TouchEvent) {}

// TouchUp implements mobile.Touchable
func (p *overlayPanel) TouchUp(*mobile.TouchEvent) {}

// TouchCancel implements mobile.Touchable
func (p *overlayPanel) TouchCancel(*mobile.TouchEvent) {
	p.gestures.Cancel()
}

func (p *overlayPanel) setSession(s *model.FloatingSession) {
	if s == nil || s.ID == p.sessionID {
		return
	}
	p.sessionID = s.ID
	p.releaseVideo()
	p.video.Objects = []fyne.CanvasObject{p.views(s.Player)}
	p.video.Refresh()
}

func (p *overlayPanel) clear() {
	if p.sessionID == uuid.Nil {
		return
	}
	p.sessionID = uuid.Nil
	p.releaseVideo()
	p.video.Objects = nil
	p.video.Refresh()
}

func (p *overlayPanel) releaseVideo() {
	for _, obj := range p.video.Objects {
		playback.ReleaseView(obj)
	}
}

func (p *overlayPanel) setBackgroundPlayback(enabled bool) {
	if enabled == p.toggleOn {
		return
	}
	p.toggleOn = enabled
	if enabled {
		p.toggle.SetIcon(theme.MediaPlayIcon())
	} else {
		p.toggle.SetIcon(theme.MediaPauseIcon())
	}
}
