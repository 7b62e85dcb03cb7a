package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom colour names used by the overlay chrome
const (
	ColorNameTrash       fyne.ThemeColorName = "livepipTrash"
	ColorNameTrashActive fyne.ThemeColorName = "livepipTrashActive"
	ColorNameScrim       fyne.ThemeColorName = "livepipScrim"
	ColorNameLive        fyne.ThemeColorName = "livepipLive"
)

// CompactTheme is the default theme with tighter spacing and the overlay colours
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameTrash:
		return color.NRGBA{R: 60, G: 60, B: 60, A: 200}
	case ColorNameTrashActive:
		return color.NRGBA{R: 211, G: 47, B: 47, A: 230}
	case ColorNameScrim:
		return color.NRGBA{A: ScrimBaseAlpha}
	case ColorNameLive:
		return color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 124, G: 77, B: 255, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// themeColor resolves a colour from the current app theme.
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
	return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
}

// withAlpha scales the alpha channel of c by a in [0,1].
func withAlpha(c color.Color, a float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A)*clampUnit(a) + 0.5)
	return n
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
