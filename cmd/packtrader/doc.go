// SPDX-License-Identifier: MPL-2.0

// Package main contains all CLI commands for packtrader.
//
// This package implements the Cobra command hierarchy for the packtrader
// CLI: listing installed packages, enumerating known package formats,
// inspecting package metadata, and generating binary plugin indexes.
package main
