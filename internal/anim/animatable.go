package anim

import (
	"sync"
	"time"
)

// Animatable is a float32 cell that either follows input directly (SnapTo)
// or interpolates toward a target over time (AnimateTo).
type Animatable struct {
	driver *Driver
	easing Easing

	mu       sync.Mutex
	value    float32
	from     float32
	target   float32
	duration time.Duration
	start    time.Time
	started  bool
	running  bool
	then     func()
}

// Value returns the current value.
func (a *Animatable) Value() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// IsRunning reports whether an animation is in flight.
func (a *Animatable) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// SetEasing replaces the curve used by subsequent AnimateTo calls.
func (a *Animatable) SetEasing(e Easing) {
	if e == nil {
		e = Linear
	}
	a.mu.Lock()
	a.easing = e
	a.mu.Unlock()
}

// SnapTo sets the value immediately. A running animation is cancelled and its
// continuation is dropped.
func (a *Animatable) SnapTo(v float32) {
	a.Stop()
	a.mu.Lock()
	a.value = v
	a.mu.Unlock()
}

// AnimateTo interpolates from the current value to target over d. then runs
// once the target has been reached, never earlier; it does not run if the
// animation is cancelled by SnapTo, Stop or another AnimateTo.
func (a *Animatable) AnimateTo(target float32, d time.Duration, then func()) {
	a.mu.Lock()
	a.from = a.value
	a.target = target
	a.duration = d
	a.started = false
	a.running = true
	a.then = then
	a.mu.Unlock()

	a.driver.add(a)
}

// Stop abandons a running animation where it is, without running its
// continuation.
func (a *Animatable) Stop() {
	a.mu.Lock()
	wasRunning := a.running
	a.running = false
	a.then = nil
	a.mu.Unlock()

	if wasRunning {
		a.driver.remove(a)
	}
}

// step moves the animation to now. It reports whether the animation finished
// on this frame and hands back its continuation.
func (a *Animatable) step(now time.Time) (bool, func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return true, nil
	}
	if !a.started {
		a.start = now
		a.started = true
	}

	elapsed := now.Sub(a.start)
	if a.duration <= 0 || elapsed >= a.duration {
		a.value = a.target
		a.running = false
		then := a.then
		a.then = nil
		return true, then
	}

	fraction := float32(elapsed) / float32(a.duration)
	a.value = a.from + (a.target-a.from)*a.easing(fraction)
	return false, nil
}
