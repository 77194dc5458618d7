// Package cli provides the interactive command-line client for the Kano
// identity service.
//
// It wires configuration, the persistent offline-session store, and the API
// client into a small REPL. Login works online with an automatic offline
// fallback when the service is unreachable; the other commands cover account
// creation, username availability checks, and credential recovery.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
