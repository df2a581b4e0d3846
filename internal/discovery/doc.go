// SPDX-License-Identifier: MPL-2.0

// Package discovery maps package format identifiers to plugin metadata
// records found under a set of discovery roots.
//
// Discovery is two-tier: each root is first checked for a precomputed binary
// plugin index (plugin-index.msgpack); only when no index exists does the
// scanner walk the root for individual descriptor files. Both tiers produce
// the same record type, and for the same set of plugins they must yield the
// same plugin identifiers.
//
// File organization:
//   - index.go: binary index reading and generation
//   - scan.go: recursive descriptor-file scanning
//   - discovery.go: the two-tier List and FindPlugin entry points
package discovery
