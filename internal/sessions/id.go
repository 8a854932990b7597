package sessions

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionID derives a deterministic identifier from the owning user and session start.
// Uses SHA-256 hash of: user_id|start (RFC 3339, nanoseconds, UTC)
func SessionID(userID string, start time.Time) string {
	data := fmt.Sprintf("%s|%s", userID, start.UTC().Format(time.RFC3339Nano))
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
