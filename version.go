package id3edit

import "runtime/debug"

// Version is the semantic version of the id3edit library.
const Version = "0.2.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string // Library version
	GoVersion string // Toolchain the binary was built with
	Revision  string // VCS revision, "unknown" outside a checkout
	Modified  bool   // Built from a dirty working tree
}

// GetVersionInfo returns version information for the running binary.
//
// Revision and Modified come from the build info the go command embeds
// when building inside a VCS checkout; no -ldflags are needed.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:  Version,
		Revision: "unknown",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the info as a single line.
func (v VersionInfo) String() string {
	s := "id3edit " + v.Version + " (" + v.Revision
	if v.Modified {
		s += ", modified"
	}
	if v.GoVersion != "" {
		s += ", " + v.GoVersion
	}
	return s + ")"
}
