// SPDX-License-Identifier: MPL-2.0

// Package metadata defines the plugin metadata record shared by the index
// reader and the filesystem scanner.
//
// A record describes one discoverable plugin: its identifier, the file that
// backs it, and the service types it declares. Records are built either from
// a metadata.desktop / metadata.json descriptor file or from one entry of a
// precomputed plugin index, and are immutable once constructed. Records that
// lack the required identity fields report IsValid() == false and are dropped
// by listing operations.
package metadata
