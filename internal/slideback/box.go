package slideback

import (
	"log/slog"
	"time"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/model"
)

// Defaults of the slide-back gesture
const (
	DefaultThreshold float32 = 0.25
	DefaultDuration          = 200 * time.Millisecond
)

// ScrimRect is the dimming layer drawn over the strip exposed by the drag.
type ScrimRect struct {
	X, Width float32
	Alpha    float32
}

// Visible reports whether the scrim has any area.
func (s ScrimRect) Visible() bool {
	return s.Width > 0 && s.Alpha > 0
}

// Option configures a Box.
type Option func(*Box)

// WithRightToLeft mirrors the gesture for right-to-left layouts.
func WithRightToLeft(rtl bool) Option {
	return func(b *Box) { b.rtl = rtl }
}

// WithThreshold sets the fraction of the width past which a drag commits.
func WithThreshold(threshold float32) Option {
	return func(b *Box) {
		if threshold > 0 && threshold < 1 {
			b.threshold = threshold
		}
	}
}

// WithDuration sets the commit and settle animation duration.
func WithDuration(d time.Duration) Option {
	return func(b *Box) {
		if d >= 0 {
			b.duration = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Box) {
		if log != nil {
			b.log = log
		}
	}
}

// Box tracks a horizontal drag over full-screen content and calls onBack
// once the content has slid off-screen past the commit threshold.
//
// Like the overlay controller it must be driven from the UI goroutine.
type Box struct {
	driver    *anim.Driver
	offset    *anim.Animatable
	onBack    func()
	width     float32
	rtl       bool
	threshold float32
	duration  time.Duration
	phase     model.SlidePhase
	log       *slog.Logger

	listeners []func()
	unsub     func()
}

// NewBox creates a box in the Idle phase at offset 0.
func NewBox(driver *anim.Driver, onBack func(), opts ...Option) *Box {
	b := &Box{
		driver:    driver,
		offset:    driver.NewAnimatable(0),
		onBack:    onBack,
		threshold: DefaultThreshold,
		duration:  DefaultDuration,
		phase:     model.SlidePhaseIdle,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	// the last frame is reported by the animation's continuation
	b.unsub = driver.OnFrame(func() {
		if b.offset.IsRunning() {
			b.changed()
		}
	})
	return b
}

// Close detaches the box from the driver and abandons a running animation
// without calling back.
func (b *Box) Close() {
	b.offset.Stop()
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}

// OnChange registers fn to be called whenever offset or phase change.
func (b *Box) OnChange(fn func()) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// SetRightToLeft switches the layout direction. The current offset is kept.
func (b *Box) SetRightToLeft(rtl bool) {
	if b.rtl == rtl {
		return
	}
	b.rtl = rtl
	b.changed()
}

// SetContainerWidth updates the width the offset is bounded by.
func (b *Box) SetContainerWidth(w float32) {
	if w < 0 {
		w = 0
	}
	if w == b.width {
		return
	}
	b.width = w
	if v := b.offset.Value(); v > w && !b.offset.IsRunning() {
		b.offset.SnapTo(w)
	}
	b.changed()
}

// Phase returns the current phase.
func (b *Box) Phase() model.SlidePhase {
	return b.phase
}

// Offset returns the drag distance, always within [0, width].
func (b *Box) Offset() float32 {
	return clamp(b.offset.Value(), 0, b.width)
}

// Progress returns Offset as a fraction of the width.
func (b *Box) Progress() float32 {
	if b.width <= 0 {
		return 0
	}
	return b.Offset() / b.width
}

// ContentOffset returns the horizontal translation of the wrapped content.
func (b *Box) ContentOffset() float32 {
	return b.Offset() * b.directionSign()
}

// Scrim returns the dimming rectangle over the exposed strip, fading from
// opaque at the start of the drag to transparent when fully slid away.
func (b *Box) Scrim() ScrimRect {
	offset := b.Offset()
	if offset <= 0 {
		return ScrimRect{}
	}
	x := float32(0)
	if b.rtl {
		x = b.width - offset
	}
	return ScrimRect{X: x, Width: offset, Alpha: 1 - b.Progress()}
}

// DragStart begins tracking a drag. A settle in progress is stopped where it
// is; a committed box ignores new drags.
func (b *Box) DragStart() {
	if !b.phase.AcceptsDrag() {
		if b.phase.IsTerminal() {
			b.log.Debug("slide back drag ignored after commit")
		}
		return
	}
	b.offset.SnapTo(b.Offset())
	b.phase = model.SlidePhaseDragging
	b.changed()
}

// DragDelta applies a raw horizontal delta in screen coordinates.
func (b *Box) DragDelta(dx float32) {
	if !b.phase.IsActive() {
		return
	}
	next := clamp(b.offset.Value()+dx*b.directionSign(), 0, b.width)
	if next == b.offset.Value() {
		return
	}
	b.offset.SnapTo(next)
	b.changed()
}

// DragEnd commits when the offset reached the threshold, otherwise settles
// back to 0.
func (b *Box) DragEnd() {
	if !b.phase.IsActive() {
		return
	}
	if b.width > 0 && b.Offset() >= b.threshold*b.width {
		b.commit()
		return
	}
	b.settle()
}

// DragCancel always settles back to 0.
func (b *Box) DragCancel() {
	if !b.phase.IsActive() {
		return
	}
	b.settle()
}

// Reset returns a committed or settling box to Idle at offset 0.
func (b *Box) Reset() {
	b.offset.SnapTo(0)
	b.phase = model.SlidePhaseIdle
	b.changed()
}

func (b *Box) commit() {
	b.phase = model.SlidePhaseCommitting
	b.changed()
	b.log.Debug("slide back committed", "offset", b.Offset(), "width", b.width)

	b.offset.AnimateTo(b.width, b.duration, func() {
		b.changed()
		if b.onBack != nil {
			b.onBack()
		}
	})
}

func (b *Box) settle() {
	b.phase = model.SlidePhaseSettling
	b.changed()

	b.offset.AnimateTo(0, b.duration, func() {
		b.phase = model.SlidePhaseIdle
		b.changed()
	})
}

func (b *Box) directionSign() float32 {
	if b.rtl {
		return -1
	}
	return 1
}

func (b *Box) changed() {
	for _, fn := range b.listeners {
		fn()
	}
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
