// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of operator-facing diagnostics.
//
// Registry failures are swallowed at the API boundary: callers get an
// invalid Package, not an error. This package gives the CLI something human
// to say about those silent failures. Each issue pairs a stable id with a
// rendered markdown explanation of what went wrong and what to try.
package issue
