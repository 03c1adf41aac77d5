package ladder

import "golang.org/x/sys/unix"

const hostFamily = FamilyDarwin

func hostVersion() Version {
	s, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return Version{}
	}
	return parseVersion(s)
}
