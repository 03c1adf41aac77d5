package ladder

import "golang.org/x/sys/windows"

const hostFamily = FamilyWindows

func hostVersion() Version {
	major, minor, _ := windows.RtlGetNtVersionNumbers()
	return Version{Major: int(major), Minor: int(minor)}
}
