// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database and storage I/O
// inside HTTP handlers. Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries, simple creates/updates
//   - Long: writes that also touch file storage (image derivation)
package timeouts

import "time"

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
	Long   = 30 * time.Second
)
