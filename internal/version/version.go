package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the ctruct CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored раскрашивает major.minor.patch, суффикс остаётся как есть.
func Colored(v string) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

// Info is the machine-readable build description.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

// Current returns build info from the package variables.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, GitMessage: GitMessage, BuildDate: BuildDate}
}

// String renders the info for `ctruct version`.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ctruct %s", Colored(i.Version))
	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&sb, " (%s)", commit)
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&sb, " built %s", i.BuildDate)
	}
	if i.GitMessage != "" {
		fmt.Fprintf(&sb, "\n%s", i.GitMessage)
	}
	return sb.String()
}
