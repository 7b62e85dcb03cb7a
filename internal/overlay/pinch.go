package overlay

import (
	"math"

	"fyne.io/fyne/v2"
)

// Batch is one step of pointer input: a pan delta and a pinch zoom factor.
// A Zoom of 0 or 1 means no pinch.
type Batch struct {
	Pan  fyne.Delta
	Zoom float32
}

// HasPinch reports whether the batch carries a usable zoom factor.
func (b Batch) HasPinch() bool {
	z := float64(b.Zoom)
	return b.Zoom > 0 && b.Zoom != 1 && !math.IsInf(z, 0) && !math.IsNaN(z)
}

// HasPan reports whether the batch moves the panel.
func (b Batch) HasPan() bool {
	return b.Pan.DX != 0 || b.Pan.DY != 0
}

// PinchTracker turns successive sets of pointer positions into batches.
// The pan is the movement of the pointers' centroid; the zoom is the ratio
// of the mean distance of the pointers from their centroid between frames.
// A change in the number of pointers re-anchors the tracker without
// producing movement.
type PinchTracker struct {
	prev []fyne.Position
}

// Update consumes the current pointer positions and returns the batch since
// the previous call.
func (p *PinchTracker) Update(pointers []fyne.Position) Batch {
	defer func() {
		p.prev = append(p.prev[:0], pointers...)
	}()

	if len(pointers) == 0 || len(pointers) != len(p.prev) {
		return Batch{Zoom: 1}
	}

	prevCentroid := centroid(p.prev)
	curCentroid := centroid(pointers)
	b := Batch{
		Pan:  fyne.NewDelta(curCentroid.X-prevCentroid.X, curCentroid.Y-prevCentroid.Y),
		Zoom: 1,
	}

	if len(pointers) > 1 {
		prevSpread := spread(p.prev, prevCentroid)
		curSpread := spread(pointers, curCentroid)
		if prevSpread > 0 && curSpread > 0 {
			b.Zoom = curSpread / prevSpread
		}
	}
	return b
}

// Reset forgets the previous pointer positions.
func (p *PinchTracker) Reset() {
	p.prev = p.prev[:0]
}

func centroid(points []fyne.Position) fyne.Position {
	var x, y float32
	for _, pt := range points {
		x += pt.X
		y += pt.Y
	}
	n := float32(len(points))
	return fyne.NewPos(x/n, y/n)
}

func spread(points []fyne.Position, c fyne.Position) float32 {
	var total float64
	for _, pt := range points {
		dx := float64(pt.X - c.X)
		dy := float64(pt.Y - c.Y)
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return float32(total / float64(len(points)))
}
