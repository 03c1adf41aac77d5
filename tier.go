package ladder

import "strconv"

// Tier is one of five ordered version-gated override slots for a
// component's render logic, oldest (Tier1) to newest (Tier5). Tier1 is the
// always-applicable floor; tiers 2..5 carry strictly increasing minimum
// platform versions per family.
type Tier int

const (
	Tier1 Tier = 1 + iota
	Tier2
	Tier3
	Tier4
	Tier5
)

const tierCount = 5

// Version is a platform version as a (major, minor) pair.
type Version struct {
	Major, Minor int
}

// AtLeast reports whether v meets min. The comparison is lexicographic and
// inclusive: a version exactly equal to a tier's minimum satisfies it.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Family is a platform family with its own version numbering.
type Family int

const (
	FamilyDarwin Family = iota
	FamilyLinux
	FamilyWindows
	familyCount
)

func (f Family) String() string {
	switch f {
	case FamilyDarwin:
		return "darwin"
	case FamilyLinux:
		return "linux"
	case FamilyWindows:
		return "windows"
	}
	return "family(" + strconv.Itoa(int(f)) + ")"
}

// minimums[f][t-2] is the minimum version tier t requires on family f.
// Each row is strictly increasing; tier_test.go guards that.
var minimums = [familyCount][tierCount - 1]Version{
	FamilyDarwin:  {{11, 0}, {12, 0}, {13, 0}, {14, 0}},
	FamilyLinux:   {{4, 19}, {5, 4}, {5, 15}, {6, 1}},
	FamilyWindows: {{6, 1}, {6, 2}, {6, 3}, {10, 0}},
}

// Min returns the minimum version the running system must meet for this
// tier on the given family. Tier1 has no minimum; ok is false for it and
// for out-of-range values.
func (t Tier) Min(f Family) (min Version, ok bool) {
	if t <= Tier1 || t > Tier5 || f < 0 || f >= familyCount {
		return Version{}, false
	}
	return minimums[f][t-2], true
}

// appliesTo reports whether the platform meets this tier's minimum.
// Tier1 applies everywhere; an unknown family satisfies nothing above it.
func (t Tier) appliesTo(p Platform) bool {
	if t <= Tier1 {
		return true
	}
	min, ok := t.Min(p.Family())
	if !ok {
		return false
	}
	return p.Version().AtLeast(min)
}

func (t Tier) String() string {
	return "tier" + strconv.Itoa(int(t))
}
