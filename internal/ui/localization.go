package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFeedTitle          = "feed_title"
	KeyWatchLive          = "watch_live"
	KeyLiveBadge          = "live_badge"
	KeyBack               = "back"
	KeySettings           = "settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyLanguage           = "language"
	KeyBackgroundPlayback = "background_playback"
	KeyRightToLeft        = "right_to_left"
	KeySettingsSaved      = "settings_saved"
	KeySlideHint          = "slide_hint"
	KeyPlaybackOn         = "playback_on"
	KeyPlaybackOff        = "playback_off"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" and unknown codes fall
// back to English.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
		return
	}
	l.currentLanguage = "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Livepip",
		KeyFeedTitle:          "Live now",
		KeyWatchLive:          "Watch",
		KeyLiveBadge:          "LIVE",
		KeyBack:               "Back",
		KeySettings:           "Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyLanguage:           "Language",
		KeyBackgroundPlayback: "Keep playing in background",
		KeyRightToLeft:        "Right-to-left layout",
		KeySettingsSaved:      "Settings saved",
		KeySlideHint:          "Swipe to keep watching in a floating window",
		KeyPlaybackOn:         "Background playback on",
		KeyPlaybackOff:        "Background playback off",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Livepip",
		KeyFeedTitle:          "Сейчас в эфире",
		KeyWatchLive:          "Смотреть",
		KeyLiveBadge:          "ЭФИР",
		KeyBack:               "Назад",
		KeySettings:           "Настройки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyLanguage:           "Язык",
		KeyBackgroundPlayback: "Воспроизводить в фоне",
		KeyRightToLeft:        "Интерфейс справа налево",
		KeySettingsSaved:      "Настройки сохранены",
		KeySlideHint:          "Смахните, чтобы смотреть в плавающем окне",
		KeyPlaybackOn:         "Фоновое воспроизведение включено",
		KeyPlaybackOff:        "Фоновое воспроизведение выключено",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Livepip",
		KeyFeedTitle:          "Ao vivo agora",
		KeyWatchLive:          "Assistir",
		KeyLiveBadge:          "AO VIVO",
		KeyBack:               "Voltar",
		KeySettings:           "Configurações",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyLanguage:           "Idioma",
		KeyBackgroundPlayback: "Continuar tocando em segundo plano",
		KeyRightToLeft:        "Layout da direita para a esquerda",
		KeySettingsSaved:      "Configurações salvas",
		KeySlideHint:          "Deslize para assistir em uma janela flutuante",
		KeyPlaybackOn:         "Reprodução em segundo plano ativada",
		KeyPlaybackOff:        "Reprodução em segundo plano desativada",
	}
}
