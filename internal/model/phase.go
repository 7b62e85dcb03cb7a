package model

// GesturePhase represents the state of the floating overlay's pointer handling
type GesturePhase string

const (
	// GesturePhaseIdle means no pointer sequence is owned by the overlay
	GesturePhaseIdle GesturePhase = "Idle"

	// GesturePhaseDragging means the overlay claimed a pointer sequence and follows pans
	GesturePhaseDragging GesturePhase = "Dragging"

	// GesturePhasePinching means a multi-touch zoom was seen in the current sequence
	GesturePhasePinching GesturePhase = "Pinching"

	// GesturePhaseSettling means the panel is bouncing back into screen bounds
	GesturePhaseSettling GesturePhase = "Settling"

	// GesturePhaseDismissing means the shrink-out animation runs before teardown
	GesturePhaseDismissing GesturePhase = "Dismissing"
)

// String returns the string representation of GesturePhase
func (gp GesturePhase) String() string {
	return string(gp)
}

// IsActive returns true while a pointer sequence is owned by the overlay
func (gp GesturePhase) IsActive() bool {
	return gp == GesturePhaseDragging || gp == GesturePhasePinching
}

// IsAnimating returns true while a release animation is running
func (gp GesturePhase) IsAnimating() bool {
	return gp == GesturePhaseSettling || gp == GesturePhaseDismissing
}

// SlidePhase represents the state of the slide-back gesture box
type SlidePhase string

const (
	// SlidePhaseIdle is the initial state, content at offset 0
	SlidePhaseIdle SlidePhase = "Idle"

	// SlidePhaseDragging means the content follows a horizontal drag
	SlidePhaseDragging SlidePhase = "Dragging"

	// SlidePhaseCommitting means the content slides off-screen and back is pending
	SlidePhaseCommitting SlidePhase = "Committing"

	// SlidePhaseSettling means the content returns to offset 0
	SlidePhaseSettling SlidePhase = "Settling"
)

// String returns the string representation of SlidePhase
func (sp SlidePhase) String() string {
	return string(sp)
}

// IsActive returns true while the user is dragging
func (sp SlidePhase) IsActive() bool {
	return sp == SlidePhaseDragging
}

// IsTerminal returns true once a drag has been committed
func (sp SlidePhase) IsTerminal() bool {
	return sp == SlidePhaseCommitting
}

// AcceptsDrag returns true if a new drag may start in this phase
func (sp SlidePhase) AcceptsDrag() bool {
	return sp == SlidePhaseIdle || sp == SlidePhaseSettling
}
