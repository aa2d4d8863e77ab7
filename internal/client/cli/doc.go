// Package cli provides the interactive LevelUp command-line client.
//
// It wires configuration, local storage, the remote API client, and an
// interactive REPL over the account, catalog, and cart services. Typical
// flow: seed the catalog, restore a persisted session if present, and
// execute user commands.
//
// Key features:
//   - Register / Login / Logout (remote-first login with local fallback)
//   - Profile editing, including the avatar path
//   - Catalog listing, category filter, and remote sync
//   - Cart management and one-shot checkout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
