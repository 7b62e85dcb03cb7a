package session

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/livepip/internal/config"
	"github.com/ytget/livepip/internal/playback"
)

func TestManager_StartAndClear(t *testing.T) {
	m := NewManager(nil, nil)
	require.Nil(t, m.Current())

	changes := 0
	m.AddListener(func() { changes++ })

	player := playback.NewPlaceholder("Sunday jam")
	s := m.Start("naddr1abc", player)
	require.NotNil(t, s)
	assert.Same(t, s, m.Current())
	assert.Equal(t, "naddr1abc", s.AddressableID)
	assert.Equal(t, 1, changes)

	m.Clear()
	assert.Nil(t, m.Current())
	assert.Equal(t, 2, changes)

	m.Clear()
	assert.Equal(t, 2, changes, "clearing without a session is a no-op")
	assert.True(t, player.IsPlaying(), "the player is not owned by the store")
}

func TestManager_StartReplacesSession(t *testing.T) {
	m := NewManager(nil, nil)
	first := m.Start("naddr1first", nil)
	second := m.Start("naddr1second", nil)

	assert.False(t, first.Same(second))
	assert.True(t, second.Same(m.Current()))
}

func TestManager_RemoveListener(t *testing.T) {
	m := NewManager(nil, nil)

	changes := 0
	remove := m.AddListener(func() { changes++ })
	m.Start("naddr1abc", nil)
	remove()
	m.Clear()

	assert.Equal(t, 1, changes)
}

func TestManager_BackgroundPlaybackPersisted(t *testing.T) {
	settings := config.NewSettings(test.NewApp())
	m := NewManager(settings, nil)
	assert.True(t, m.BackgroundPlayback())

	changes := 0
	m.AddListener(func() { changes++ })

	m.SetBackgroundPlayback(false)
	assert.False(t, m.BackgroundPlayback())
	assert.False(t, settings.BackgroundPlayback())
	assert.Equal(t, 1, changes)

	m.SetBackgroundPlayback(false)
	assert.Equal(t, 1, changes, "unchanged flag does not notify")
}

func TestManager_BackgroundLifecycle(t *testing.T) {
	m := NewManager(nil, nil)
	player := playback.NewPlaceholder("live")
	m.Start("naddr1abc", player)

	m.EnteredBackground()
	assert.True(t, player.IsPlaying(), "background playback enabled keeps playing")

	m.SetBackgroundPlayback(false)
	m.EnteredBackground()
	assert.False(t, player.IsPlaying())

	m.EnteredForeground()
	assert.True(t, player.IsPlaying())
}

func TestManager_ForegroundDoesNotResumeUserPause(t *testing.T) {
	m := NewManager(nil, nil)
	m.SetBackgroundPlayback(false)
	player := playback.NewPlaceholder("live")
	player.Pause()
	m.Start("naddr1abc", player)

	m.EnteredBackground()
	m.EnteredForeground()
	assert.False(t, player.IsPlaying())
}
