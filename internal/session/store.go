package session

import (
	"log/slog"
	"sync"

	"github.com/ytget/livepip/internal/model"
	"github.com/ytget/livepip/internal/playback"
)

// Store defines the floating-session state holder consumed by the overlay.
type Store interface {
	Current() *model.FloatingSession
	Clear()
	BackgroundPlayback() bool
	SetBackgroundPlayback(enabled bool)

	// AddListener registers fn to be called after the session or the
	// background playback flag changed, and returns a function that
	// unregisters it.
	AddListener(fn func()) (remove func())
}

// Preferences persists the background playback flag.
type Preferences interface {
	BackgroundPlayback() bool
	SetBackgroundPlayback(enabled bool)
}

// Manager is the process-wide Store implementation.
type Manager struct {
	mu        sync.RWMutex
	current   *model.FloatingSession
	prefs     Preferences
	listeners map[int]func()
	nextID    int

	// pausedInBackground is set when EnteredBackground paused the player.
	pausedInBackground bool

	log *slog.Logger
}

// NewManager creates a manager backed by prefs. A nil prefs keeps the flag in
// memory only, enabled.
func NewManager(prefs Preferences, log *slog.Logger) *Manager {
	if prefs == nil {
		prefs = &memoryPreferences{enabled: true}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		prefs:     prefs,
		listeners: make(map[int]func()),
		log:       log,
	}
}

// Start replaces the current session with a new one for addressableID.
func (m *Manager) Start(addressableID string, player playback.Player) *model.FloatingSession {
	s := model.NewFloatingSession(addressableID, player)

	m.mu.Lock()
	m.current = s
	m.pausedInBackground = false
	m.mu.Unlock()

	m.log.Debug("floating session started", "session", s.ID, "addressable_id", addressableID)
	m.notify()
	return s
}

// Current returns the floating session, or nil when none is shown.
func (m *Manager) Current() *model.FloatingSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Clear tears down the current session. It is a no-op without a session.
func (m *Manager) Clear() {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.pausedInBackground = false
	m.mu.Unlock()

	if s == nil {
		return
	}
	m.log.Debug("floating session cleared", "session", s.ID)
	m.notify()
}

// BackgroundPlayback returns whether playback continues in the background.
func (m *Manager) BackgroundPlayback() bool {
	return m.prefs.BackgroundPlayback()
}

// SetBackgroundPlayback stores the background playback flag.
func (m *Manager) SetBackgroundPlayback(enabled bool) {
	if m.prefs.BackgroundPlayback() == enabled {
		return
	}
	m.prefs.SetBackgroundPlayback(enabled)
	m.log.Debug("background playback changed", "enabled", enabled)
	m.notify()
}

// AddListener registers a change listener.
func (m *Manager) AddListener(fn func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// EnteredBackground pauses the floating player when background playback is
// disabled.
func (m *Manager) EnteredBackground() {
	if m.prefs.BackgroundPlayback() {
		return
	}

	m.mu.Lock()
	s := m.current
	if s == nil || s.Player == nil || !s.Player.IsPlaying() {
		m.mu.Unlock()
		return
	}
	m.pausedInBackground = true
	m.mu.Unlock()

	s.Player.Pause()
}

// EnteredForeground resumes a player paused by EnteredBackground.
func (m *Manager) EnteredForeground() {
	m.mu.Lock()
	s := m.current
	resume := m.pausedInBackground
	m.pausedInBackground = false
	m.mu.Unlock()

	if resume && s != nil && s.Player != nil {
		s.Player.Play()
	}
}

// notify calls every listener outside the lock
func (m *Manager) notify() {
	m.mu.RLock()
	listeners := make([]func(), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

type memoryPreferences struct {
	mu      sync.Mutex
	enabled bool
}

func (p *memoryPreferences) BackgroundPlayback() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *memoryPreferences) SetBackgroundPlayback(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}
