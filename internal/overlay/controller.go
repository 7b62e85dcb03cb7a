package overlay

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/model"
	"github.com/ytget/livepip/internal/session"
)

// State is a snapshot of everything the overlay renders.
type State struct {
	Visible  bool
	Session  *model.FloatingSession
	Phase    model.GesturePhase
	Position fyne.Position
	Size     fyne.Size
	Scale    float32

	Dragging  bool
	OverTrash bool

	// TrashSize is the animated diameter of the trash affordance; 0 hides it.
	TrashCenter fyne.Position
	TrashSize   float32

	BackgroundPlayback bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gesture outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithGeometry replaces the default geometry.
func WithGeometry(g Geometry) Option {
	return func(c *Controller) { c.geo = g }
}

// WithInitialWidth sets the width a new session starts with.
func WithInitialWidth(w float32) Option {
	return func(c *Controller) { c.initialWidth = w }
}

// Controller owns position, size and gesture state of the floating panel.
//
// All methods must be called from the UI goroutine, the same one that
// advances the animation driver. Store listeners are handled synchronously,
// so the store should be mutated from that goroutine too.
type Controller struct {
	store    session.Store
	driver   *anim.Driver
	onReturn func(addressableID string)
	onResize func(width float32)
	geo      Geometry
	log      *slog.Logger

	session      *model.FloatingSession
	screen       fyne.Size
	placed       bool
	initialWidth float32

	width float32
	x, y  *anim.Animatable
	scale *anim.Animatable
	trash *anim.Animatable

	phase      model.GesturePhase
	dragging   bool
	overTrash  bool
	hasDragged bool
	hasPinched bool

	listeners []func()
	unsub     []func()
}

// NewController creates a controller reading sessions from store. onReturn is
// called with the session's addressable ID when the panel is tapped.
func NewController(store session.Store, driver *anim.Driver, onReturn func(addressableID string), opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		driver:   driver,
		onReturn: onReturn,
		geo:      DefaultGeometry(),
		log:      slog.Default(),
		phase:    model.GesturePhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.initialWidth == 0 {
		c.initialWidth = c.geo.DefaultWidth
	}
	c.width = c.geo.ClampWidth(c.initialWidth)

	c.x = driver.NewAnimatable(0)
	c.y = driver.NewAnimatable(0)
	c.scale = driver.NewAnimatable(1)
	c.scale.SetEasing(anim.EaseOut)
	c.trash = driver.NewAnimatable(0)
	c.trash.SetEasing(anim.EaseOut)

	c.unsub = append(c.unsub,
		driver.OnFrame(func() {
			if c.phase.IsAnimating() || c.trash.IsRunning() {
				c.changed()
			}
		}),
		store.AddListener(c.syncSession),
	)
	c.syncSession()
	return c
}

// Close stops listening to the store and the driver and abandons running
// animations.
func (c *Controller) Close() {
	for _, fn := range c.unsub {
		fn()
	}
	c.unsub = nil
	c.x.Stop()
	c.y.Stop()
	c.scale.Stop()
	c.trash.Stop()
}

// OnChange registers fn to be called whenever the rendered state changes.
func (c *Controller) OnChange(fn func()) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// OnResize registers fn to be called with the final width after a pinch.
func (c *Controller) OnResize(fn func(width float32)) {
	c.onResize = fn
}

// Geometry returns the geometry in use.
func (c *Controller) Geometry() Geometry {
	return c.geo
}

// SetScreenSize updates the available area. An idle panel is kept within
// the new bounds. An empty area leaves the panel where it is.
func (c *Controller) SetScreenSize(size fyne.Size) {
	if size == c.screen {
		return
	}
	c.screen = size

	if size.Width > 0 && size.Height > 0 {
		switch {
		case !c.placed:
			c.placeDefault()
		case c.phase == model.GesturePhaseIdle:
			pos := c.geo.ClampPosition(c.position(), c.panelSize(), c.screen)
			c.x.SnapTo(pos.X)
			c.y.SnapTo(pos.Y)
		}
	}
	c.changed()
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() State {
	return State{
		Visible:            c.session != nil,
		Session:            c.session,
		Phase:              c.phase,
		Position:           c.position(),
		Size:               c.panelSize(),
		Scale:              c.scale.Value(),
		Dragging:           c.dragging,
		OverTrash:          c.overTrash,
		TrashCenter:        c.geo.TrashCenter(c.screen),
		TrashSize:          c.trash.Value(),
		BackgroundPlayback: c.store.BackgroundPlayback(),
	}
}

// Press claims a new pointer sequence. It reports whether the overlay took
// ownership; it declines when there is no session or the panel is being
// dismissed.
func (c *Controller) Press() bool {
	if c.session == nil || c.phase == model.GesturePhaseDismissing {
		return false
	}
	if c.phase.IsActive() {
		return true
	}
	if c.phase == model.GesturePhaseSettling {
		c.x.Stop()
		c.y.Stop()
	}

	c.phase = model.GesturePhaseDragging
	c.dragging = true
	c.overTrash = false
	c.hasDragged = false
	c.hasPinched = false
	c.showTrash(c.geo.TrashSize)
	c.changed()
	return true
}

// Move applies one batch of pointer input. Pinch and pan are applied
// independently; the position is not clamped while the sequence is active.
func (c *Controller) Move(b Batch) bool {
	if c.session == nil || !c.phase.IsActive() {
		return false
	}

	pinch, pan := b.HasPinch(), b.HasPan()
	if !pinch && !pan {
		return true
	}

	if pinch {
		c.width = c.geo.ClampWidth(c.width * b.Zoom)
		c.hasPinched = true
		c.phase = model.GesturePhasePinching
	}
	if pan {
		c.hasDragged = true
		c.x.SnapTo(c.x.Value() + b.Pan.DX)
		c.y.SnapTo(c.y.Value() + b.Pan.DY)
	}

	over := OverTrash(c.position(), c.panelSize(), c.geo.TrashCenter(c.screen), c.geo.TrashRadius)
	if over != c.overTrash {
		c.overTrash = over
		if over {
			c.showTrash(c.geo.TrashSizeActive)
		} else {
			c.showTrash(c.geo.TrashSize)
		}
	}
	c.changed()
	return true
}

// Release ends the pointer sequence: dismiss when dropped on the trash zone,
// bounce back into bounds after a drag or a pinch, or report a tap.
func (c *Controller) Release() {
	if c.session == nil || !c.phase.IsActive() {
		return
	}

	s := c.session
	overTrash := c.overTrash
	c.dragging = false
	c.overTrash = false
	c.hideTrash()
	c.notifyResize()

	switch {
	case overTrash:
		c.dismiss(s)
	case c.hasDragged:
		c.bounceBack()
	case c.hasPinched:
		c.settleAfterPinch()
	default:
		c.phase = model.GesturePhaseIdle
		c.changed()
		c.log.Debug("floating overlay tapped", "addressable_id", s.AddressableID)
		if c.onReturn != nil {
			c.onReturn(s.AddressableID)
		}
	}
}

// Cancel ends an interrupted pointer sequence. It never taps or dismisses;
// a moved or resized panel still bounces back into bounds.
func (c *Controller) Cancel() {
	if c.session == nil || !c.phase.IsActive() {
		return
	}

	c.dragging = false
	c.overTrash = false
	c.hideTrash()
	c.notifyResize()

	switch {
	case c.hasDragged:
		c.bounceBack()
	case c.hasPinched:
		c.settleAfterPinch()
	default:
		c.phase = model.GesturePhaseIdle
		c.changed()
	}
}

// ToggleBackgroundPlayback flips the shared background playback flag.
func (c *Controller) ToggleBackgroundPlayback() {
	if c.session == nil {
		return
	}
	c.store.SetBackgroundPlayback(!c.store.BackgroundPlayback())
	c.changed()
}

func (c *Controller) dismiss(s *model.FloatingSession) {
	c.phase = model.GesturePhaseDismissing
	c.changed()
	c.log.Debug("floating overlay dismissing", "session", s.ID, "title", s.GetDisplayTitle())

	c.scale.AnimateTo(0, c.geo.DismissDuration, func() {
		if cur := c.store.Current(); cur.Same(s) {
			c.store.Clear()
		}
	})
}

func (c *Controller) bounceBack() {
	c.phase = model.GesturePhaseSettling
	c.changed()

	target := c.geo.ClampPosition(c.position(), c.panelSize(), c.screen)
	c.log.Debug("floating overlay settling", "x", target.X, "y", target.Y)

	done := anim.Join(2, func() {
		if c.phase == model.GesturePhaseSettling {
			c.phase = model.GesturePhaseIdle
			c.changed()
		}
	})
	c.x.AnimateTo(target.X, c.geo.BounceDuration, done)
	c.y.AnimateTo(target.Y, c.geo.BounceDuration, done)
}

// settleAfterPinch bounces a panel that grew past the screen edges and
// otherwise leaves it where it is.
func (c *Controller) settleAfterPinch() {
	if !c.geo.InBounds(c.position(), c.panelSize(), c.screen) {
		c.bounceBack()
		return
	}
	c.phase = model.GesturePhaseIdle
	c.changed()
}

// showTrash grows or shrinks the trash affordance towards size.
func (c *Controller) showTrash(size float32) {
	c.trash.AnimateTo(size, c.geo.TrashDuration, c.changed)
}

// hideTrash fades the affordance out. One that never became visible is
// dropped without animating.
func (c *Controller) hideTrash() {
	if c.trash.Value() <= 0 {
		c.trash.SnapTo(0)
		return
	}
	c.trash.AnimateTo(0, c.geo.TrashDuration, c.changed)
}

// syncSession follows the store. A different session resets the panel.
func (c *Controller) syncSession() {
	cur := c.store.Current()
	if cur.Same(c.session) {
		c.changed()
		return
	}

	c.session = cur
	c.x.Stop()
	c.y.Stop()
	c.scale.SnapTo(1)
	c.trash.SnapTo(0)
	c.phase = model.GesturePhaseIdle
	c.dragging = false
	c.overTrash = false
	c.hasDragged = false
	c.hasPinched = false
	c.width = c.geo.ClampWidth(c.initialWidth)
	c.placed = false
	if c.screen.Width > 0 && c.screen.Height > 0 {
		c.placeDefault()
	}
	c.changed()
}

func (c *Controller) placeDefault() {
	pos := c.geo.DefaultPosition(c.panelSize(), c.screen)
	c.x.SnapTo(pos.X)
	c.y.SnapTo(pos.Y)
	c.placed = true
}

// notifyResize keeps a pinched width for the next session and reports it.
func (c *Controller) notifyResize() {
	if !c.hasPinched {
		return
	}
	c.initialWidth = c.width
	if c.onResize != nil {
		c.onResize(c.width)
	}
}

func (c *Controller) position() fyne.Position {
	return fyne.NewPos(c.x.Value(), c.y.Value())
}

func (c *Controller) panelSize() fyne.Size {
	return PanelSize(c.width)
}

func (c *Controller) changed() {
	for _, fn := range c.listeners {
		fn()
	}
}
