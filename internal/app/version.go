package app

import (
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/heartmarshall/postcraft-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports Version plus the VCS revision. When Commit was not
// injected at link time the revision stamped by the go toolchain is used.
func BuildVersion() string {
	commit, built, dirty := Commit, BuildTime, false
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	var b strings.Builder
	b.WriteString(Version)
	if commit != "" {
		if len(commit) > 12 {
			commit = commit[:12]
		}
		b.WriteString("+" + commit)
		if dirty {
			b.WriteString("-dirty")
		}
	}
	if built != "" {
		b.WriteString(" (" + built + ")")
	}
	return b.String()
}
