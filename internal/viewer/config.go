package viewer

import "time"

// Config holds viewer options.
type Config struct {
	// FrameDelay is the time between separation playback frames.
	// Zero uses DefaultFrameDelay.
	FrameDelay time.Duration
}

// DefaultFrameDelay is the playback speed used when none is configured.
const DefaultFrameDelay = 30 * time.Millisecond
