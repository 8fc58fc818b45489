// Package version exposes the client library version used in the
// User-Agent header of every request.
package version

// Version is the library version. Overridable at build time via
// -ldflags "-X github.com/ledgerpay/ledgerpay-go/version.Version=1.2.3".
var Version = "0.3.0"

// UserAgent returns the default User-Agent string.
func UserAgent() string {
	return "ledgerpay-go/" + Version
}
