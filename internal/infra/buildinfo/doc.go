// Package buildinfo exposes version information injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/jsettings-go/internal/infra/buildinfo.Version=v1.0.0"
//
// GoVersion falls back to the toolchain recorded in the binary.
package buildinfo
