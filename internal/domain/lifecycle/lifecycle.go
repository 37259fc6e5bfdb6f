// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// resources (HTTP servers, database connections, workers).
const DefaultTimeout = 10 * time.Second
