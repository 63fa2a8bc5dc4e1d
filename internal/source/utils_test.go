package source

import "testing"

func TestStripCR(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		stripped bool
	}{
		{"", "", false},
		{"no cr\n", "no cr\n", false},
		{"a\r\nb", "a\nb", true},
		{"\r\r\r", "", true},
		{"lone\rcr", "lonecr", true},
	}
	for _, tt := range tests {
		got, stripped := stripCR([]byte(tt.in))
		if string(got) != tt.want || stripped != tt.stripped {
			t.Errorf("stripCR(%q) = %q,%v want %q,%v", tt.in, got, stripped, tt.want, tt.stripped)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a/./b/../c.c"); got != "a/c.c" {
		t.Errorf("normalizePath = %q", got)
	}
}
