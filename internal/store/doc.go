// Package store implements the application state container.
//
// A single Store instance, owned by the composition root, holds the asset and
// NFT lists, per-list load status, search queries, and the theme flag. All
// writes go through named mutation methods; all reads are copy-out projections
// over current state. Watchers receive coalescable change notifications.
package store
