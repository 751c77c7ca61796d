// Package cli provides the interactive Birthday Keeper command-line client.
//
// It wires configuration, the local SQLite store, the auth and birthday
// services, and an interactive REPL. Typical flow: restore the saved
// session (or prompt for credentials), then execute user commands.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Add / List / Show / Delete birthday entries
//   - Dashboard filters: free-text search, category, sort order
//   - Month calendar view
//   - Wish-card maker with templates, theme colors, and backgrounds
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
