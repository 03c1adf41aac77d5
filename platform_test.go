package ladder

import (
	"runtime"
	"testing"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want Version
	}{
		{"6.1.0-23-generic", Version{6, 1}},
		{"14.4.1", Version{14, 4}},
		{"10", Version{10, 0}},
		{"5.15", Version{5, 15}},
		{"", Version{}},
		{"abc", Version{}},
		{"12.", Version{12, 0}},
	}
	for _, c := range cases {
		if got := parseVersion(c.in); got != c.want {
			t.Errorf("parseVersion(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHostFamilyMatchesGOOS(t *testing.T) {
	want, ok := map[string]Family{
		"linux":   FamilyLinux,
		"darwin":  FamilyDarwin,
		"windows": FamilyWindows,
	}[runtime.GOOS]
	if !ok {
		t.Skipf("no family mapping for %s", runtime.GOOS)
	}
	if got := Host().Family(); got != want {
		t.Errorf("Host().Family() = %v, want %v", got, want)
	}
}

func TestStatic(t *testing.T) {
	p := Static{F: FamilyWindows, V: Version{10, 0}}
	if p.Family() != FamilyWindows || p.Version() != (Version{10, 0}) {
		t.Errorf("Static accessors returned %v %v", p.Family(), p.Version())
	}
}
