// Package game provides the global services ability handlers call into:
// one-shot sound playback and user-facing status lines. Handlers receive
// Services as a dependency rather than reaching for package globals, so
// tests can substitute a mock.
package game

//go:generate mockgen -source=services.go -destination=mock/mock_services.go -package=mockgame

// Services is the surface ability handlers use to talk to the outside of
// the combat core
type Services interface {
	// PlaySFX plays a one-shot sound resource. Fire-and-forget: it never
	// blocks and playback failures are logged, not returned.
	PlaySFX(name string)

	// SayLine emits a user-facing status line attributed to an actor
	SayLine(text, actorID string)
}

// GameServices is the production Services implementation: beep-backed
// audio plus an in-memory message feed
type GameServices struct {
	audio *AudioPlayer
	feed  *MessageFeed
}

// NewServices bundles an audio player and a message feed. A nil audio
// player disables playback.
func NewServices(audio *AudioPlayer, feed *MessageFeed) *GameServices {
	if feed == nil {
		feed = NewMessageFeed()
	}
	return &GameServices{
		audio: audio,
		feed:  feed,
	}
}

// PlaySFX plays a preloaded sound by resource name
func (s *GameServices) PlaySFX(name string) {
	if s.audio == nil {
		return
	}
	s.audio.Play(name)
}

// SayLine records a status line for an actor
func (s *GameServices) SayLine(text, actorID string) {
	s.feed.Say(text, actorID)
}

// Feed returns the message feed
func (s *GameServices) Feed() *MessageFeed {
	return s.feed
}
