// Package confloader loads the jsettings tool configuration and watches
// settings files for changes.
//
// Configuration priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (JSETTINGS_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Default values already present in the target struct
//
// The Watcher reports writes and creations of registered files, optionally
// rate limited so bursts of editor events do not turn into bursts of reloads.
package confloader
