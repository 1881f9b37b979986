// Package command provides the jsettings command-line interface.
//
// It uses urfave/cli/v2. The app's Before hook resolves the tool
// configuration and installs the process logger; every command then builds
// its own settings loader from that configuration.
//
//   - root.go: App, global flags, configuration and logger setup
//   - validate.go: validate, show and get
//   - watch.go: watch with reloads, metrics and graceful shutdown
package command
