// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format, and derives the discovery search paths from platform
// conventions.
//
// Configuration is loaded from ~/.config/packtrader/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/packtrader/config.cue
// on macOS, %APPDATA%\packtrader\config.cue on Windows) and validated
// against an embedded CUE schema. The host can prepend extra discovery
// roots, extra structure-module directories, and custom category labels.
//
// Search paths are ordered: order determines precedence during structure
// resolution, so the first directory that resolves a format wins.
package config
