package server

import "time"

const (
	// DefaultAddr is used by DefaultConfig and matches SERVER_ADDR's default.
	DefaultAddr = ":8080"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps request headers at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)
