package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/config"
	"github.com/ytget/livepip/internal/overlay"
	"github.com/ytget/livepip/internal/playback"
	"github.com/ytget/livepip/internal/session"
	"github.com/ytget/livepip/internal/slideback"
)

// RootUI represents the main UI structure: a feed of live streams, a live
// screen stacked above it and the floating overlay layer above everything.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	sessions     *session.Manager
	driver       *anim.Driver
	localization *Localization
	mobile       *MobileUI
	views        playback.ViewFactory
	log          *slog.Logger

	streams []Stream

	screens    *fyne.Container
	feed       fyne.CanvasObject
	live       *SlideBackBox
	liveStream Stream
	livePlayer playback.Player
	liveView   fyne.CanvasObject

	// player of the current floating session, paused once it is dismissed
	floatingPlayer playback.Player

	overlayCtrl  *overlay.Controller
	overlayLayer *FloatingOverlay
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sessions *session.Manager, driver *anim.Driver, log *slog.Logger) *RootUI {
	if log == nil {
		log = slog.Default()
	}
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		sessions:     sessions,
		driver:       driver,
		localization: localization,
		mobile:       NewMobileUI(app),
		views:        playback.NewPlaceholderView,
		log:          log,
		streams:      DemoStreams(),
	}

	ui.setupUI()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.overlayCtrl = overlay.NewController(ui.sessions, ui.driver, ui.onReturnToLive,
		overlay.WithLogger(ui.log),
		overlay.WithInitialWidth(ui.settings.GetOverlayWidth()),
	)
	ui.overlayCtrl.OnResize(ui.settings.SetOverlayWidth)
	ui.overlayLayer = NewFloatingOverlay(ui.overlayCtrl, ui.views)
	ui.sessions.AddListener(ui.onSessionChange)

	ui.feed = ui.createFeed()
	ui.screens = container.NewStack(ui.feed)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.window.SetContent(container.NewStack(ui.screens, ui.overlayLayer))
	ui.mobile.SizeWindow(ui.window)

	ui.log.Debug("ui setup completed", "streams", len(ui.streams))
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
	))
}

func (ui *RootUI) createFeed() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyFeedTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	list := widget.NewList(
		func() int { return len(ui.streams) },
		func() fyne.CanvasObject {
			row := NewStreamRow(ui.localization)
			row.SetOnWatch(ui.openLive)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.streams) {
				return
			}
			if row, ok := obj.(*StreamRow); ok {
				row.SetStream(ui.streams[id])
			}
		},
	)

	top := container.NewBorder(nil, nil, nil, settingsBtn, title)
	return container.NewBorder(top, nil, nil, nil, list)
}

func (ui *RootUI) createLiveScreen(s Stream, player playback.Player) fyne.CanvasObject {
	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), ui.onSlideBack)
	backBtn.Importance = widget.LowImportance

	title := widget.NewLabel(s.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	host := widget.NewLabel(s.Host)

	hint := widget.NewLabel(ui.localization.GetText(KeySlideHint))
	hint.Alignment = fyne.TextAlignCenter
	hint.Wrapping = fyne.TextWrapWord

	header := container.NewBorder(nil, nil, backBtn, nil, title)
	info := container.NewVBox(host, layout.NewSpacer(), hint)

	// the surface is opaque so the feed below only shows through the strip
	// exposed by the slide
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	ui.liveView = ui.views(player)
	return container.NewStack(bg, container.NewBorder(header, info, nil, nil, ui.liveView))
}

// openLive shows the live screen for s. A floating session for the same
// stream hands its player back and is cleared.
func (ui *RootUI) openLive(s Stream) {
	if ui.live != nil {
		ui.closeLive(true)
	}

	player := ui.takeFloatingPlayer(s.AddressableID)
	if player == nil {
		player = playback.NewPlaceholder(s.Title)
	}
	player.Play()
	ui.liveStream = s
	ui.livePlayer = player

	box := slideback.NewBox(ui.driver, ui.onSlideBack,
		slideback.WithRightToLeft(ui.settings.GetRightToLeft()),
		slideback.WithThreshold(ui.settings.GetSlideBackThreshold()),
		slideback.WithLogger(ui.log),
	)
	ui.live = NewSlideBackBox(box, ui.createLiveScreen(s, player))

	ui.screens.Objects = []fyne.CanvasObject{ui.feed, ui.live}
	ui.screens.Refresh()
	ui.log.Info("live screen opened", "addressable_id", s.AddressableID)
}

// closeLive pops the live screen. pause stops its player unless it keeps
// playing in a floating session.
func (ui *RootUI) closeLive(pause bool) {
	if ui.live == nil {
		return
	}
	ui.live.Box().Close()
	playback.ReleaseView(ui.liveView)
	if pause && ui.livePlayer != nil {
		ui.livePlayer.Pause()
	}
	ui.live = nil
	ui.livePlayer = nil
	ui.liveView = nil
	ui.liveStream = Stream{}

	ui.screens.Objects = []fyne.CanvasObject{ui.feed}
	ui.screens.Refresh()
}

// onSlideBack leaves the live screen and keeps the stream playing in the
// floating overlay.
func (ui *RootUI) onSlideBack() {
	if ui.live == nil {
		return
	}
	s, player := ui.liveStream, ui.livePlayer

	ui.closeLive(false)
	ui.sessions.Start(s.AddressableID, player)
	ui.log.Info("stream moved to floating overlay", "addressable_id", s.AddressableID)
}

// onReturnToLive handles a tap on the floating overlay.
func (ui *RootUI) onReturnToLive(addressableID string) {
	s, ok := ui.findStream(addressableID)
	if !ok {
		ui.log.Warn("floating session for unknown stream", "addressable_id", addressableID)
		ui.sessions.Clear()
		return
	}
	ui.openLive(s)
}

// takeFloatingPlayer moves the player of a floating session for
// addressableID to the live screen.
func (ui *RootUI) takeFloatingPlayer(addressableID string) playback.Player {
	cur := ui.sessions.Current()
	if cur == nil || cur.AddressableID != addressableID {
		return nil
	}
	ui.livePlayer = cur.Player
	ui.sessions.Clear()
	return cur.Player
}

// onSessionChange pauses a floating player that was dismissed or replaced,
// unless the live screen took it over.
func (ui *RootUI) onSessionChange() {
	var next playback.Player
	if cur := ui.sessions.Current(); cur != nil {
		next = cur.Player
	}
	prev := ui.floatingPlayer
	ui.floatingPlayer = next

	if prev != nil && prev != next && prev != ui.livePlayer {
		prev.Pause()
	}
}

func (ui *RootUI) findStream(addressableID string) (Stream, bool) {
	for _, s := range ui.streams {
		if s.AddressableID == addressableID {
			return s, true
		}
	}
	return Stream{}, false
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.sessions, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	if ui.live != nil {
		ui.live.Box().SetRightToLeft(ui.settings.GetRightToLeft())
	}
	ui.onLanguageChange(ui.settings.GetLanguage())
}

func (ui *RootUI) onLanguageChange(langCode string) {
	if langCode == ui.localization.GetCurrentLanguage() {
		return
	}
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the localized parts of the window
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.feed = ui.createFeed()
	ui.screens.Objects[0] = ui.feed
	ui.screens.Refresh()
}
