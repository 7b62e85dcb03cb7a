package anim

// Package anim implements frame-stepped value animation for UI gestures.
// A Driver is advanced once per frame by the host render loop; Animatable
// cells either snap to a value (direct drag tracking) or interpolate toward a
// target with an easing curve (settle and dismiss), running a continuation
// only once the target has been reached.
