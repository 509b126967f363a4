// Package ids generates entity identifiers. Ids keep the millisecond
// timestamp shape the stored keys are built from, with a process-local
// monotonic guard so two rapid creations can never collide.
package ids

import (
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64
)

// NextMillis returns the current wall-clock time in milliseconds, bumped
// forward when needed so consecutive calls are strictly increasing.
func NextMillis() int64 {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return now
}
