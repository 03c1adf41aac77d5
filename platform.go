package ladder

import (
	"strconv"
	"strings"
)

// Platform reports the running system's family and version. It is the one
// external input the resolution ladder consumes; the host environment
// supplies it and tests substitute their own.
type Platform interface {
	Family() Family
	Version() Version
}

// Static is a fixed platform, for tests and for hosts that pin a version.
type Static struct {
	F Family
	V Version
}

func (s Static) Family() Family   { return s.F }
func (s Static) Version() Version { return s.V }

// Host returns the running system's platform. Detection is best-effort:
// when the version cannot be read, the zero version is reported and every
// gated component resolves its tier-1 body.
func Host() Platform {
	return Static{F: hostFamily, V: hostVersion()}
}

// parseVersion reads a leading "major.minor" from strings like "6.1.0-23"
// or "14.4.1". Trailing noise is ignored; absent fields are zero.
func parseVersion(s string) Version {
	if i := strings.IndexFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	}); i >= 0 {
		s = s[:i]
	}
	parts := strings.SplitN(s, ".", 3)
	var v Version
	v.Major, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		v.Minor, _ = strconv.Atoi(parts[1])
	}
	return v
}
