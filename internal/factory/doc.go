// SPDX-License-Identifier: MPL-2.0

// Package factory is the seam between a resolved plugin file and a live
// package structure instance.
//
// A ModuleLoader turns a file path into a Factory; the Factory constructs
// the structure, receiving the plugin's own metadata as configuration. Two
// loaders ship with the package: StaticLoader, an in-process registry of
// statically linked factories (the default, and the deterministic choice for
// tests), and NativeLoader, which opens a Go plugin shared object. Hosts may
// inject any other implementation of the capability.
package factory
