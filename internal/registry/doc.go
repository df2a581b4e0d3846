// SPDX-License-Identifier: MPL-2.0

// Package registry is the package-loading façade.
//
// A Loader resolves package format identifiers to structure instances,
// caching each instance so at most one exists per format for the Loader's
// lifetime, and enumerates installed packages across the discovery roots.
// Hosts normally construct one Loader at startup and pass it around; the
// package-level SetLoader/Self pair exists for hosts that want a process-wide
// instance, with first-registration-wins semantics.
//
// All access is assumed to happen on a single logical thread. Resolution
// failures are logged and swallowed: the public surface reports absence
// through invalid Package values and empty listings, never through errors.
package registry
