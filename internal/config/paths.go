// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// StructureSubDir is the fixed subdirectory, relative to each data dir,
// where package-structure modules live.
const StructureSubDir = AppName + string(filepath.Separator) + "structures"

// dataDirsOverride lets tests pin the platform data dirs.
var dataDirsOverride []string

// OverrideDataDirs pins DataDirs to dirs and returns a restore function.
// Test-only hook.
func OverrideDataDirs(dirs []string) func() {
	prev := dataDirsOverride
	dataDirsOverride = slices.Clone(dirs)
	return func() { dataDirsOverride = prev }
}

// DataDirs returns the ordered platform data directories used as discovery
// roots. On Linux this is $XDG_DATA_HOME (default ~/.local/share) followed
// by $XDG_DATA_DIRS (default /usr/local/share:/usr/share); macOS and
// Windows use their native equivalents. Order is precedence.
func DataDirs() []string {
	if dataDirsOverride != nil {
		return slices.Clone(dataDirsOverride)
	}

	var dirs []string

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			dirs = append(dirs, appData)
		}
		if programData := os.Getenv("ProgramData"); programData != "" {
			dirs = append(dirs, programData)
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, "Library", "Application Support"))
		}
		dirs = append(dirs, "/Library/Application Support")
	default: // Linux and others
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dataHome = filepath.Join(home, ".local", "share")
			}
		}
		if dataHome != "" {
			dirs = append(dirs, dataHome)
		}

		dataDirs := os.Getenv("XDG_DATA_DIRS")
		if dataDirs == "" {
			dataDirs = "/usr/local/share:/usr/share"
		}
		for _, dir := range strings.Split(dataDirs, ":") {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}

	return dirs
}

// DiscoveryRoots returns the ordered roots under which installed packages
// are listed: the config's extra search paths first, then the platform data
// dirs.
func (c *Config) DiscoveryRoots() []string {
	roots := slices.Clone(c.SearchPaths)
	return append(roots, DataDirs()...)
}

// StructureModuleDirs returns the ordered plugin search path for structure
// modules: the config's extra structure dirs first, then StructureSubDir
// under every data dir.
func (c *Config) StructureModuleDirs() []string {
	dirs := slices.Clone(c.StructureDirs)
	for _, dataDir := range DataDirs() {
		dirs = append(dirs, filepath.Join(dataDir, StructureSubDir))
	}
	return dirs
}
