package slideback

// Package slideback implements the swipe-to-go-back container: full-screen
// content follows a horizontal drag, a scrim dims the strip it exposes, and
// releasing past the commit threshold slides the content away before the
// back callback runs. Right-to-left layouts mirror the gesture.
