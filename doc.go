// Package produce implements a single-operator inventory ledger for
// perishable goods.
//
// The [Ledger] owns the collection of stock [Item]s, an append-only log of
// [Transaction] records, and the accumulated sales revenue. All mutating
// operations (add, sell, adjust, remove) go through the ledger, which
// enforces the core invariants: quantities and prices are never negative,
// every mutation is logged exactly once, and the revenue always equals the
// sum of all sale transaction totals.
//
// Persistence is a single human-diffable JSON file, read fully on load and
// written back fully on save (see [SaveInventory] and [LoadInventory]).
// Flat CSV exports for external reporting live in export.go.
//
// The package never prints; it returns values and errors that the CLI in
// cmd/ renders.
package produce
