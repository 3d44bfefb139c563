// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of long-lived
// resources (HTTP servers, database pools, publishers).
const DefaultTimeout = 10 * time.Second
