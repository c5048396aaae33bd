// Package version reports build information for the CLI and the bridge's
// /info endpoint.
//
//	go build -ldflags "-X github.com/kbukum/airelay/version.Version=1.0.0" ./cmd/airelay
package version
