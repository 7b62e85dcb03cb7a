package playback

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Placeholder is a Player without a decoder: it only tracks play state.
type Placeholder struct {
	mu        sync.RWMutex
	title     string
	playing   bool
	listeners map[int]func()
	nextID    int
}

// NewPlaceholder creates a placeholder player that starts playing.
func NewPlaceholder(title string) *Placeholder {
	return &Placeholder{
		title:     title,
		playing:   true,
		listeners: make(map[int]func()),
	}
}

// Title returns the stream title
func (p *Placeholder) Title() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.title
}

// IsPlaying reports whether playback is running
func (p *Placeholder) IsPlaying() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playing
}

// Play resumes playback
func (p *Placeholder) Play() {
	p.setPlaying(true)
}

// Pause suspends playback
func (p *Placeholder) Pause() {
	p.setPlaying(false)
}

// AddListener registers a state change listener
func (p *Placeholder) AddListener(fn func()) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Placeholder) setPlaying(playing bool) {
	p.mu.Lock()
	if p.playing == playing {
		p.mu.Unlock()
		return
	}
	p.playing = playing
	listeners := make([]func(), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Surface colors of the placeholder view
var (
	SurfaceColor = color.NRGBA{R: 16, G: 16, B: 20, A: 255}
	CaptionColor = color.NRGBA{R: 235, G: 235, B: 240, A: 255}
)

// PlaceholderView renders a dark surface with the player's title and a play
// state icon. It follows the player's state changes until released.
type PlaceholderView struct {
	widget.BaseWidget

	player  Player
	caption *canvas.Text
	state   *widget.Icon
	unsub   func()
}

// NewPlaceholderView creates a PlaceholderView for p. It satisfies
// ViewFactory.
func NewPlaceholderView(p Player) fyne.CanvasObject {
	v := &PlaceholderView{
		player:  p,
		caption: canvas.NewText("", CaptionColor),
		state:   widget.NewIcon(nil),
	}
	v.caption.TextSize = theme.CaptionTextSize()
	v.caption.Alignment = fyne.TextAlignCenter
	v.ExtendBaseWidget(v)
	v.update()

	if p != nil {
		v.unsub = p.AddListener(func() { fyne.Do(v.update) })
	}
	return v
}

// Release stops following the player. It is safe to call more than once.
func (v *PlaceholderView) Release() {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
}

// CreateRenderer implements fyne.Widget
func (v *PlaceholderView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(SurfaceColor)
	content := container.NewStack(bg, container.NewCenter(container.NewVBox(v.state, v.caption)))
	return &placeholderViewRenderer{WidgetRenderer: widget.NewSimpleRenderer(content), view: v}
}

func (v *PlaceholderView) update() {
	if v.player == nil {
		v.caption.Text = ""
		v.state.SetResource(theme.MediaStopIcon())
		v.caption.Refresh()
		return
	}
	v.caption.Text = v.player.Title()
	if v.player.IsPlaying() {
		v.state.SetResource(theme.MediaPlayIcon())
	} else {
		v.state.SetResource(theme.MediaPauseIcon())
	}
	v.caption.Refresh()
}

type placeholderViewRenderer struct {
	fyne.WidgetRenderer
	view *PlaceholderView
}

func (r *placeholderViewRenderer) Destroy() {
	r.view.Release()
	r.WidgetRenderer.Destroy()
}
