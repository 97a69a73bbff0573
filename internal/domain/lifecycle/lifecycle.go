// Package lifecycle holds process-wide start and stop constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery
const DefaultTimeout = 10 * time.Second
