// Package cli provides the interactive menumap command-line client.
//
// It wires configuration, the local credential store, the restaurant API
// client, and an interactive REPL. Typical flow: restore the saved session,
// seed the list from the local snapshot, and execute user commands.
//
// Key features:
//   - Login / Signup / Logout with a durable session
//   - List / Search / Map over the restaurant directory
//   - Scan a menu QR code from an image file and register the restaurant
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
