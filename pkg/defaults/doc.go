// Package defaults provides centralized configuration constants for rigcheck.
//
// Timeouts and limits used by more than one package live here so they can
// be tuned in one place:
//
//   - Server timeouts: For HTTP server configuration
//   - Handler timeouts: For HTTP request processing
//   - Rate limits: For the API's token bucket
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.VerifyHandlerTimeout)
//	defer cancel()
package defaults
