package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/config"
	"github.com/ytget/livepip/internal/session"
)

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	a := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	sessions := session.NewManager(config.NewSettings(a), nil)
	return NewRootUI(w, a, sessions, anim.NewDriver(), nil)
}

func TestRootUI_SlideBackStartsFloatingSession(t *testing.T) {
	ui := newTestRootUI(t)
	stream := ui.streams[0]

	ui.openLive(stream)
	require.NotNil(t, ui.live)
	assert.Len(t, ui.screens.Objects, 2)
	player := ui.livePlayer

	ui.onSlideBack()
	assert.Nil(t, ui.live)
	assert.Len(t, ui.screens.Objects, 1)

	cur := ui.sessions.Current()
	require.NotNil(t, cur)
	assert.Equal(t, stream.AddressableID, cur.AddressableID)
	assert.Same(t, player, cur.Player)
	assert.True(t, player.IsPlaying(), "keeps playing while floating")
}

func TestRootUI_ReturnReusesPlayer(t *testing.T) {
	ui := newTestRootUI(t)
	stream := ui.streams[1]

	ui.openLive(stream)
	player := ui.livePlayer
	ui.onSlideBack()

	ui.onReturnToLive(stream.AddressableID)

	assert.Nil(t, ui.sessions.Current(), "returning clears the floating session")
	require.NotNil(t, ui.live)
	assert.Same(t, player, ui.livePlayer)
	assert.True(t, player.IsPlaying())
}

func TestRootUI_DismissPausesFloatingPlayer(t *testing.T) {
	ui := newTestRootUI(t)

	ui.openLive(ui.streams[0])
	player := ui.livePlayer
	ui.onSlideBack()

	ui.sessions.Clear()
	assert.False(t, player.IsPlaying())
}

func TestRootUI_ReplacingSessionPausesPrevious(t *testing.T) {
	ui := newTestRootUI(t)

	ui.openLive(ui.streams[0])
	first := ui.livePlayer
	ui.onSlideBack()

	ui.openLive(ui.streams[1])
	second := ui.livePlayer
	ui.onSlideBack()

	assert.False(t, first.IsPlaying())
	assert.True(t, second.IsPlaying())
	assert.Equal(t, ui.streams[1].AddressableID, ui.sessions.Current().AddressableID)
}

func TestRootUI_UnknownStreamClearsSession(t *testing.T) {
	ui := newTestRootUI(t)
	ui.openLive(ui.streams[0])
	ui.onSlideBack()

	ui.onReturnToLive("30311:unknown:stream")
	assert.Nil(t, ui.sessions.Current())
	assert.Nil(t, ui.live)
}

func TestRootUI_SettingsApplyToLiveScreen(t *testing.T) {
	ui := newTestRootUI(t)
	ui.openLive(ui.streams[0])

	ui.settings.SetRightToLeft(true)
	ui.settings.SetLanguage("pt")
	ui.onSettingsSaved()

	assert.Equal(t, "pt", ui.localization.GetCurrentLanguage())
	assert.Len(t, ui.screens.Objects, 2)
	assert.Same(t, ui.feed, ui.screens.Objects[0])
}

func TestRootUI_LiveViewReleasedOnClose(t *testing.T) {
	ui := newTestRootUI(t)
	var views viewTracker
	ui.views = views.build

	ui.openLive(ui.streams[0])
	ui.openLive(ui.streams[1])
	require.Len(t, views.views, 2)
	assert.True(t, views.views[0].released, "replaced live screen")
	assert.False(t, views.views[1].released)

	ui.onSlideBack()
	assert.True(t, views.views[1].released)
}
