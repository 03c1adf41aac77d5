//go:build !linux && !darwin && !windows

package ladder

// Unknown systems report the zero version and resolve tier 1.
const hostFamily = FamilyLinux

func hostVersion() Version { return Version{} }
