package overlay

// Package overlay implements the floating live-stream panel: a draggable,
// pinch-resizable 16:9 window that bounces back into the screen after a
// drag, shrinks away when dropped on the trash zone, and returns to the
// full-screen stream when tapped. The Controller is toolkit independent;
// internal/ui adapts Fyne pointer events to it and renders its State.
