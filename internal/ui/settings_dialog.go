package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/livepip/internal/config"
	"github.com/ytget/livepip/internal/session"
)

// SettingsDialog edits background playback, layout direction and language
type SettingsDialog struct {
	settings     *config.Settings
	sessions     session.Store
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backgroundCheck *widget.Check
	rtlCheck        *widget.Check
	languageSelect  *widget.Select

	languageCodes []string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// new values have been stored.
func NewSettingsDialog(settings *config.Settings, sessions session.Store, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		sessions:     sessions,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.backgroundCheck = widget.NewCheck(sd.localization.GetText(KeyBackgroundPlayback), nil)
	sd.rtlCheck = widget.NewCheck(sd.localization.GetText(KeyRightToLeft), nil)

	options := sd.settings.GetLanguageOptions()
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	slices.Sort(sd.languageCodes)
	labels := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		labels = append(labels, options[code])
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		sd.backgroundCheck,
		sd.rtlCheck,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backgroundCheck.SetChecked(sd.sessions.BackgroundPlayback())
	sd.rtlCheck.SetChecked(sd.settings.GetRightToLeft())
	if i := slices.Index(sd.languageCodes, sd.settings.GetLanguage()); i >= 0 {
		sd.languageSelect.SetSelectedIndex(i)
	}
}

// selectedLanguage maps the selected label back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	i := sd.languageSelect.SelectedIndex()
	if i < 0 || i >= len(sd.languageCodes) {
		return ""
	}
	return sd.languageCodes[i]
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// the store persists the flag and notifies the overlay
	sd.sessions.SetBackgroundPlayback(sd.backgroundCheck.Checked)
	sd.settings.SetRightToLeft(sd.rtlCheck.Checked)
	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
