package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ytget/livepip/internal/playback"
)

// FloatingSession represents a live stream that keeps playing in the floating
// overlay after its full-screen view was left
type FloatingSession struct {
	ID            uuid.UUID
	AddressableID string          // naddr of the live event, used to return to full screen
	Player        playback.Player // shared with the source screen, never released by the overlay
	StartedAt     time.Time
}

// NewFloatingSession creates a session with a fresh ID
func NewFloatingSession(addressableID string, player playback.Player) *FloatingSession {
	return &FloatingSession{
		ID:            uuid.New(),
		AddressableID: addressableID,
		Player:        player,
		StartedAt:     time.Now(),
	}
}

// Same reports whether other refers to the same session instance
func (fs *FloatingSession) Same(other *FloatingSession) bool {
	if fs == nil || other == nil {
		return fs == other
	}
	return fs.ID == other.ID
}

// GetDisplayTitle returns the player title, or the addressable ID when the
// player has none
func (fs *FloatingSession) GetDisplayTitle() string {
	if fs.Player != nil {
		if title := fs.Player.Title(); title != "" {
			return title
		}
	}
	return fs.AddressableID
}
