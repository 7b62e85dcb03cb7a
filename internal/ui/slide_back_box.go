package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/livepip/internal/slideback"
)

// SlideBackBox wraps full-screen content so a horizontal drag slides it off
// to reveal whatever is stacked beneath, dimmed by a scrim.
type SlideBackBox struct {
	widget.BaseWidget

	box      *slideback.Box
	content  fyne.CanvasObject
	scrim    *canvas.Rectangle
	dragging bool
}

// NewSlideBackBox creates a widget driving box with content.
func NewSlideBackBox(box *slideback.Box, content fyne.CanvasObject) *SlideBackBox {
	sb := &SlideBackBox{
		box:     box,
		content: content,
		scrim:   canvas.NewRectangle(themeColor(ColorNameScrim)),
	}
	sb.scrim.Hide()
	sb.ExtendBaseWidget(sb)

	box.OnChange(sb.Refresh)
	return sb
}

// Box returns the gesture state behind the widget
func (sb *SlideBackBox) Box() *slideback.Box {
	return sb.box
}

// Dragged implements fyne.Draggable. Only the horizontal component is used.
func (sb *SlideBackBox) Dragged(ev *fyne.DragEvent) {
	if !sb.dragging {
		sb.dragging = true
		sb.box.DragStart()
	}
	sb.box.DragDelta(ev.Dragged.DX)
}

// DragEnd implements fyne.Draggable
func (sb *SlideBackBox) DragEnd() {
	if !sb.dragging {
		return
	}
	sb.dragging = false
	sb.box.DragEnd()
}

// TouchDown implements mobile.Touchable
func (sb *SlideBackBox) TouchDown(*mobile.TouchEvent) {}

// TouchUp implements mobile.Touchable
func (sb *SlideBackBox) TouchUp(*mobile.TouchEvent) {}

// TouchCancel implements mobile.Touchable
func (sb *SlideBackBox) TouchCancel(*mobile.TouchEvent) {
	if !sb.dragging {
		return
	}
	sb.dragging = false
	sb.box.DragCancel()
}

// CreateRenderer implements fyne.Widget
func (sb *SlideBackBox) CreateRenderer() fyne.WidgetRenderer {
	return &slideBackRenderer{sb: sb}
}

type slideBackRenderer struct {
	sb *SlideBackBox
}

func (r *slideBackRenderer) Layout(size fyne.Size) {
	r.sb.box.SetContainerWidth(size.Width)
	r.apply(size)
}

func (r *slideBackRenderer) MinSize() fyne.Size {
	return r.sb.content.MinSize()
}

func (r *slideBackRenderer) Refresh() {
	r.apply(r.sb.Size())
	canvas.Refresh(r.sb.content)
}

func (r *slideBackRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.sb.content, r.sb.scrim}
}

func (r *slideBackRenderer) Destroy() {}

func (r *slideBackRenderer) apply(size fyne.Size) {
	sb := r.sb
	sb.content.Resize(size)
	sb.content.Move(fyne.NewPos(sb.box.ContentOffset(), 0))

	scrim := sb.box.Scrim()
	if !scrim.Visible() {
		sb.scrim.Hide()
		return
	}
	sb.scrim.FillColor = withAlpha(themeColor(ColorNameScrim), scrim.Alpha)
	sb.scrim.Move(fyne.NewPos(scrim.X, 0))
	sb.scrim.Resize(fyne.NewSize(scrim.Width, size.Height))
	sb.scrim.Show()
	sb.scrim.Refresh()
}
