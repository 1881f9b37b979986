// Package shutdown coordinates graceful shutdown of long-running commands.
//
// A Handler waits for SIGINT, SIGTERM or context cancellation and then runs
// the registered hooks in reverse order of registration, bounded by a timeout.
package shutdown
