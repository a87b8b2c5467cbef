// FILE: bouquet/config/timing.go
package config

import "time"

// Network deadlines applied by the locator.
const (
	// DefaultFetchTimeout bounds a single URL fetch, connect and read combined
	DefaultFetchTimeout = 30 * time.Second

	// MinFetchTimeout is the floor applied to caller supplied timeouts
	MinFetchTimeout = 100 * time.Millisecond
)
