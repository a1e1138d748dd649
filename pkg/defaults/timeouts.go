package defaults

import "time"

// Server timeouts.
const (
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// VerifyHandlerTimeout bounds a single /v1/verify request.
const VerifyHandlerTimeout = 10 * time.Second

// Server listen and rate limit defaults.
const (
	ServerPort           = 8080
	ServerRateLimit      = 100 // requests per second
	ServerRateLimitBurst = 200
)
