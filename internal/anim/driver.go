package anim

import (
	"context"
	"sync"
	"time"
)

// FrameInterval is the tick period used by Run (roughly 60 frames per second).
const FrameInterval = 16 * time.Millisecond

// Driver advances every running Animatable once per frame.
//
// All mutation happens on the UI goroutine: Advance, AnimateTo, SnapTo and
// Stop are expected to be called from the same goroutine (Fyne's main
// goroutine in production, the test goroutine in tests). Run only schedules
// Advance through the supplied post function.
type Driver struct {
	mu      sync.Mutex
	running map[*Animatable]struct{}
	onFrame map[int]func()
	nextID  int
}

// NewDriver creates an idle driver.
func NewDriver() *Driver {
	return &Driver{
		running: make(map[*Animatable]struct{}),
		onFrame: make(map[int]func()),
	}
}

// NewAnimatable creates a cell driven by d, starting at value.
func (d *Driver) NewAnimatable(value float32) *Animatable {
	return &Animatable{driver: d, value: value, easing: FastOutSlowIn}
}

// OnFrame registers fn to be called after each frame that moved at least one
// animation. The returned function unregisters it.
func (d *Driver) OnFrame(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.onFrame[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.onFrame, id)
		d.mu.Unlock()
	}
}

// Active reports whether any animation is in flight.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.running) > 0
}

// Advance steps every running animation to time now. Continuations of
// animations that reached their target run after all animations of the frame
// have been stepped, so they may start new animations.
func (d *Driver) Advance(now time.Time) {
	d.mu.Lock()
	if len(d.running) == 0 {
		d.mu.Unlock()
		return
	}
	active := make([]*Animatable, 0, len(d.running))
	for a := range d.running {
		active = append(active, a)
	}
	listeners := make([]func(), 0, len(d.onFrame))
	for _, fn := range d.onFrame {
		listeners = append(listeners, fn)
	}
	d.mu.Unlock()

	var done []func()
	for _, a := range active {
		if finished, then := a.step(now); finished {
			d.remove(a)
			if then != nil {
				done = append(done, then)
			}
		}
	}

	for _, fn := range done {
		fn()
	}
	for _, fn := range listeners {
		fn()
	}
}

// Run ticks the driver every FrameInterval until ctx is done. Each tick is
// handed to post so that Advance executes on the UI goroutine; frames are
// skipped while nothing is animating.
func (d *Driver) Run(ctx context.Context, post func(func())) {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !d.Active() {
				continue
			}
			post(func() { d.Advance(time.Now()) })
		}
	}
}

func (d *Driver) add(a *Animatable) {
	d.mu.Lock()
	d.running[a] = struct{}{}
	d.mu.Unlock()
}

func (d *Driver) remove(a *Animatable) {
	d.mu.Lock()
	delete(d.running, a)
	d.mu.Unlock()
}
