package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second // one upstream call at its own 10s limit
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
