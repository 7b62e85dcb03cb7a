package overlay

import (
	"time"

	"fyne.io/fyne/v2"
)

// AspectRatio is the panel's height-to-width ratio (16:9 video).
const AspectRatio float32 = 9.0 / 16.0

// Geometry holds the sizing, trash-zone and timing constants of the overlay.
type Geometry struct {
	MinWidth     float32
	MaxWidth     float32
	DefaultWidth float32
	EdgePadding  float32

	// Trash zone: centred horizontally, TrashBottomOffset above the bottom
	// edge. TrashRadius is the collision radius; the sizes only drive the
	// affordance.
	TrashBottomOffset float32
	TrashRadius       float32
	TrashSize         float32
	TrashSizeActive   float32

	DismissDuration time.Duration
	BounceDuration  time.Duration
	TrashDuration   time.Duration
}

// DefaultGeometry returns the stock overlay geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		MinWidth:          120,
		MaxWidth:          300,
		DefaultWidth:      200,
		EdgePadding:       16,
		TrashBottomOffset: 96,
		TrashRadius:       72,
		TrashSize:         56,
		TrashSizeActive:   72,
		DismissDuration:   250 * time.Millisecond,
		BounceDuration:    200 * time.Millisecond,
		TrashDuration:     150 * time.Millisecond,
	}
}

// ClampWidth keeps w within [MinWidth, MaxWidth].
func (g Geometry) ClampWidth(w float32) float32 {
	if w < g.MinWidth {
		return g.MinWidth
	}
	if w > g.MaxWidth {
		return g.MaxWidth
	}
	return w
}

// HeightFor returns the 16:9 height of a panel of width w.
func HeightFor(w float32) float32 {
	return w * AspectRatio
}

// PanelSize returns the panel size for width w.
func PanelSize(w float32) fyne.Size {
	return fyne.NewSize(w, HeightFor(w))
}

// ClampPosition moves pos into [EdgePadding, screen - panel - EdgePadding]
// on both axes. When the screen is too small for the panel the lower bound
// wins.
func (g Geometry) ClampPosition(pos fyne.Position, panel, screen fyne.Size) fyne.Position {
	return fyne.NewPos(
		clampAxis(pos.X, g.EdgePadding, screen.Width-panel.Width-g.EdgePadding),
		clampAxis(pos.Y, g.EdgePadding, screen.Height-panel.Height-g.EdgePadding),
	)
}

// InBounds reports whether pos is already a settled position.
func (g Geometry) InBounds(pos fyne.Position, panel, screen fyne.Size) bool {
	return g.ClampPosition(pos, panel, screen) == pos
}

// DefaultPosition places the panel in the bottom-end corner.
func (g Geometry) DefaultPosition(panel, screen fyne.Size) fyne.Position {
	return g.ClampPosition(fyne.NewPos(
		screen.Width-panel.Width-g.EdgePadding,
		screen.Height-panel.Height-g.EdgePadding,
	), panel, screen)
}

// TrashCenter returns the centre of the trash zone for the given screen.
func (g Geometry) TrashCenter(screen fyne.Size) fyne.Position {
	return fyne.NewPos(screen.Width/2, screen.Height-g.TrashBottomOffset)
}

// OverTrash reports whether the centre of the panel at pos lies strictly
// within radius of the trash centre.
func OverTrash(pos fyne.Position, panel fyne.Size, trash fyne.Position, radius float32) bool {
	dx := pos.X + panel.Width/2 - trash.X
	dy := pos.Y + panel.Height/2 - trash.Y
	return dx*dx+dy*dy < radius*radius
}

func clampAxis(v, lo, hi float32) float32 {
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
