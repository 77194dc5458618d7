// Package kanoclient is a client for the Kano user-identity service. It
// registers accounts, checks username availability, recovers forgotten
// usernames and passwords, and manages a login session.
//
// Its distinguishing feature is the offline-capable session cache: every
// successful online login (or registration) writes an encrypted copy of the
// session to a local key-value store, keyed by a one-way digest of the
// username and sealed with a key derived from the user's credentials. When
// the service is unreachable, Login falls back to that record, so a
// previously authenticated user can re-establish a logged-in state with no
// network at all. The fallback only ever fires on transport failure — a
// server that answers and rejects the credentials never triggers it.
//
// Typical use:
//
//	api, err := kanoclient.New(&kanoclient.Config{DefaultURL: "https://api.kano.me"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sess, err := api.Login(ctx, "testing", "m0nk3y123")
//
// Transport and persistence are injectable: see pkg/gateway for the network
// boundary and pkg/storage for the cache backends (in-memory, BadgerDB,
// Redis). Logout clears only the in-memory state; the persisted cache
// survives so offline login keeps working. Use ClearOfflineSession for
// explicit invalidation.
package kanoclient
