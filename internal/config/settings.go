package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackgroundPlayback = "background_playback"
	KeyOverlayWidth       = "overlay_width"
	KeyRightToLeft        = "right_to_left"
	KeyLanguage           = "app_language"
	KeySlideBackThreshold = "slide_back_threshold"
)

// Default values
const (
	DefaultBackgroundPlayback         = true
	DefaultOverlayWidth       float32 = 200
	DefaultRightToLeft                = false
	DefaultLanguage                   = "system"
	DefaultSlideBackThreshold float32 = 0.25
)

// Bounds applied by the setters
const (
	MinOverlayWidth       float32 = 120
	MaxOverlayWidth       float32 = 300
	MinSlideBackThreshold float32 = 0.05
	MaxSlideBackThreshold float32 = 0.95
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// BackgroundPlayback returns whether floating playback continues while the
// app is in the background
func (s *Settings) BackgroundPlayback() bool {
	return s.app.Preferences().BoolWithFallback(KeyBackgroundPlayback, DefaultBackgroundPlayback)
}

// SetBackgroundPlayback sets the background playback flag
func (s *Settings) SetBackgroundPlayback(enabled bool) {
	s.app.Preferences().SetBool(KeyBackgroundPlayback, enabled)
}

// GetOverlayWidth returns the last width chosen for the floating overlay
func (s *Settings) GetOverlayWidth() float32 {
	value := s.app.Preferences().Float(KeyOverlayWidth)
	if value <= 0 {
		s.SetOverlayWidth(DefaultOverlayWidth)
		return DefaultOverlayWidth
	}
	return clamp(float32(value), MinOverlayWidth, MaxOverlayWidth)
}

// SetOverlayWidth stores the overlay width
func (s *Settings) SetOverlayWidth(width float32) {
	s.app.Preferences().SetFloat(KeyOverlayWidth, float64(clamp(width, MinOverlayWidth, MaxOverlayWidth)))
}

// GetRightToLeft returns whether the layout direction is right-to-left
func (s *Settings) GetRightToLeft() bool {
	return s.app.Preferences().BoolWithFallback(KeyRightToLeft, DefaultRightToLeft)
}

// SetRightToLeft sets the layout direction
func (s *Settings) SetRightToLeft(rtl bool) {
	s.app.Preferences().SetBool(KeyRightToLeft, rtl)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSlideBackThreshold returns the fraction of the container width past
// which a slide-back drag commits
func (s *Settings) GetSlideBackThreshold() float32 {
	value := s.app.Preferences().Float(KeySlideBackThreshold)
	if value <= 0 {
		s.SetSlideBackThreshold(DefaultSlideBackThreshold)
		return DefaultSlideBackThreshold
	}
	return float32(value)
}

// SetSlideBackThreshold sets the slide-back commit threshold
func (s *Settings) SetSlideBackThreshold(threshold float32) {
	s.app.Preferences().SetFloat(KeySlideBackThreshold, float64(clamp(threshold, MinSlideBackThreshold, MaxSlideBackThreshold)))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
