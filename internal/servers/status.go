package servers

import "time"

// Health status values derived from last_seen.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Status derives the health of a server from its last_seen timestamp.
// A server is online when it has reported data within the freshness window;
// a server that has never reported (nil last_seen) is offline. Nothing is
// stored — status is recomputed against the clock on every call.
func Status(lastSeen *time.Time, now time.Time, window time.Duration) string {
	if lastSeen == nil {
		return StatusOffline
	}
	if now.Sub(*lastSeen) <= window {
		return StatusOnline
	}
	return StatusOffline
}
