package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device-dependent sizing
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// SizeWindow gives desktop windows a phone-shaped size so the floating panel
// and the slide-back gesture have realistic room. Mobile windows are always
// full screen and are left alone.
func (m *MobileUI) SizeWindow(w fyne.Window) {
	if m.IsMobileDevice() {
		return
	}
	w.Resize(fyne.NewSize(DesktopWindowWidth, DesktopWindowHeight))
}
