package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cases := map[string]string{
		"0.1.0-dev":            "0.1.0-dev",
		"1.2.3":                "1.2.3",
		"1.2.3-rc.1+build.123": "1.2.3-rc.1+build.123",
		"weird":                "weird",
	}
	for in, want := range cases {
		if got := Colored(in); got != want {
			t.Errorf("Colored(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestInfoString(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cases := []struct {
		info Info
		want string
	}{
		{Info{Version: "1.0.0"}, "ctruct 1.0.0"},
		{Info{Version: "1.0.0", GitCommit: "1234567890abcdef"}, "ctruct 1.0.0 (1234567890ab)"},
		{Info{Version: "1.0.0", BuildDate: "2024-01-15"}, "ctruct 1.0.0 built 2024-01-15"},
		{Info{Version: "1.0.0", GitCommit: "abc", GitMessage: "fix lexer"}, "ctruct 1.0.0 (abc)\nfix lexer"},
	}
	for _, tc := range cases {
		if got := tc.info.String(); got != tc.want {
			t.Errorf("String()=%q, want %q", got, tc.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	origCommit := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = origCommit }()

	if got := Current(); got.GitCommit != "abc123" || got.Version != Version {
		t.Fatalf("Current()=%+v", got)
	}
}
