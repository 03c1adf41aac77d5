package ladder

import "golang.org/x/sys/unix"

const hostFamily = FamilyLinux

func hostVersion() Version {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Version{}
	}
	return parseVersion(unix.ByteSliceToString(u.Release[:]))
}
