// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE configuration
// files: schema-unified parsing, size limits, and error formatting that
// turns CUE's internal error lists into single user-facing messages with
// JSON-path locations.
package cueutil
