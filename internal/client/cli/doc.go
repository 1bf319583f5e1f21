// Package cli provides the interactive ProAim command-line client.
//
// It wires configuration, the local credential store, the REST API client,
// and an interactive REPL over the property-rental views. Typical flow:
// restore any persisted session, then execute user commands, each gated by
// the route guard.
//
// Key features:
//   - Login / Register / Logout with persisted sessions
//   - Dashboard, property, listing, and payment views
//   - User administration (ADMIN role only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
