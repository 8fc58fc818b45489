// Package config loads client configuration from the environment.
//
// Settings come from, in increasing precedence: an optional YAML config
// file, a .env file (via godotenv), and process environment variables
// with the LEDGERPAY_ prefix:
//
//	LEDGERPAY_ENDPOINT=https://api.ledgerpay.example/v1
//	LEDGERPAY_TOKEN=sk_live_...
//	LEDGERPAY_TIMEOUT=10s
//	LEDGERPAY_LOG_LEVEL=debug
//
// Explicit transport.Config construction is always available for callers
// that manage configuration themselves; this package is a convenience
// for the common case.
package config
