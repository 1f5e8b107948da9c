// Package server runs the vault daemon's HTTP listener together with its
// background workers.
//
// It owns startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and graceful
// shutdown: the listener stops accepting requests, in-flight requests are
// given time to finish, and workers such as the auto-lock job are stopped.
package server
