package playback

import "fyne.io/fyne/v2"

// Player defines the interface of a media playback engine.
type Player interface {
	Title() string
	IsPlaying() bool
	Play()
	Pause()

	// AddListener registers fn to be called after every state change and
	// returns a function that unregisters it.
	AddListener(fn func()) (remove func())
}

// ViewFactory builds the canvas object that renders a player's video surface.
type ViewFactory func(Player) fyne.CanvasObject

// Releaser is implemented by views that subscribe to their player.
type Releaser interface {
	Release()
}

// ReleaseView unsubscribes a view built by a ViewFactory, if it needs it.
func ReleaseView(obj fyne.CanvasObject) {
	if r, ok := obj.(Releaser); ok {
		r.Release()
	}
}
