package overlay

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestGeometry_ClampWidth(t *testing.T) {
	g := DefaultGeometry()

	tests := []struct {
		in, want float32
	}{
		{0, 120},
		{-50, 120},
		{119.9, 120},
		{200, 200},
		{300, 300},
		{301, 300},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.ClampWidth(tt.in), "ClampWidth(%v)", tt.in)
	}
}

func TestHeightFor(t *testing.T) {
	assert.Equal(t, float32(67.5), HeightFor(120))
	assert.Equal(t, float32(168.75), HeightFor(300))
	assert.Equal(t, fyne.NewSize(160, 90), PanelSize(160))
}

func TestGeometry_ClampPosition(t *testing.T) {
	g := DefaultGeometry()
	panel := fyne.NewSize(200, 112.5)
	scr := fyne.NewSize(400, 800)

	assert.Equal(t, fyne.NewPos(16, 16), g.ClampPosition(fyne.NewPos(-100, -100), panel, scr))
	assert.Equal(t, fyne.NewPos(184, 671.5), g.ClampPosition(fyne.NewPos(1000, 1000), panel, scr))
	assert.Equal(t, fyne.NewPos(50, 60), g.ClampPosition(fyne.NewPos(50, 60), panel, scr))

	// screen narrower than the panel: lower bound wins
	assert.Equal(t, fyne.NewPos(16, 16), g.ClampPosition(fyne.NewPos(80, 80), panel, fyne.NewSize(150, 100)))
}

func TestGeometry_InBounds(t *testing.T) {
	g := DefaultGeometry()
	panel := fyne.NewSize(200, 112.5)
	scr := fyne.NewSize(400, 800)

	assert.True(t, g.InBounds(fyne.NewPos(16, 16), panel, scr))
	assert.True(t, g.InBounds(fyne.NewPos(184, 671.5), panel, scr))
	assert.False(t, g.InBounds(fyne.NewPos(15, 16), panel, scr))
	assert.False(t, g.InBounds(fyne.NewPos(16, 672), panel, scr))
}

func TestGeometry_TrashCenter(t *testing.T) {
	g := DefaultGeometry()
	assert.Equal(t, fyne.NewPos(200, 704), g.TrashCenter(fyne.NewSize(400, 800)))
}

func TestBatch(t *testing.T) {
	assert.False(t, Batch{}.HasPinch())
	assert.False(t, Batch{Zoom: 1}.HasPinch())
	assert.False(t, Batch{Zoom: -1}.HasPinch())
	assert.True(t, Batch{Zoom: 0.9}.HasPinch())

	assert.False(t, Batch{}.HasPan())
	assert.True(t, Batch{Pan: fyne.NewDelta(0, 1)}.HasPan())
}

func TestPinchTracker(t *testing.T) {
	var p PinchTracker

	first := p.Update([]fyne.Position{fyne.NewPos(0, 0), fyne.NewPos(100, 0)})
	assert.Equal(t, Batch{Zoom: 1}, first, "first frame only anchors")

	spread := p.Update([]fyne.Position{fyne.NewPos(-50, 0), fyne.NewPos(150, 0)})
	assert.Equal(t, float32(2), spread.Zoom)
	assert.False(t, spread.HasPan(), "symmetric spread keeps the centroid")

	moved := p.Update([]fyne.Position{fyne.NewPos(-40, 10), fyne.NewPos(160, 10)})
	assert.Equal(t, float32(1), moved.Zoom)
	assert.Equal(t, fyne.NewDelta(10, 10), moved.Pan)

	lifted := p.Update([]fyne.Position{fyne.NewPos(160, 10)})
	assert.Equal(t, Batch{Zoom: 1}, lifted, "pointer count change re-anchors")

	single := p.Update([]fyne.Position{fyne.NewPos(170, 30)})
	assert.Equal(t, Batch{Pan: fyne.NewDelta(10, 20), Zoom: 1}, single)

	p.Reset()
	assert.Equal(t, Batch{Zoom: 1}, p.Update([]fyne.Position{fyne.NewPos(0, 0)}))
}
