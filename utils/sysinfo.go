package utils

import (
	"errors"
	"fmt"

	"github.com/bi-zone/wmi"
	"golang.org/x/sys/windows"
)

// OSInfo describes the running system. Frame metrics and capture behavior
// differ between Windows releases, so it goes into logs and the About box.
type OSInfo struct {
	Caption     string
	Version     string
	BuildNumber string
	Elevated    bool
}

func (o *OSInfo) String() string {
	s := fmt.Sprintf("%s %s (build %s)", o.Caption, o.Version, o.BuildNumber)
	if o.Elevated {
		s += ", elevated"
	}
	return s
}

const osQuery = "SELECT Caption, Version, BuildNumber FROM Win32_OperatingSystem"

type win32OperatingSystem struct {
	Caption     string
	Version     string
	BuildNumber string
}

func QueryOSInfo() (*OSInfo, error) {
	var dst []win32OperatingSystem
	if err := wmi.Query(osQuery, &dst); err != nil {
		return nil, fmt.Errorf("wmi: %w", err)
	}
	if len(dst) == 0 {
		return nil, errors.New("wmi: no Win32_OperatingSystem instance")
	}
	return &OSInfo{
		Caption:     dst[0].Caption,
		Version:     dst[0].Version,
		BuildNumber: dst[0].BuildNumber,
		Elevated:    IsAdmin(),
	}, nil
}

// IsAdmin reports whether the process token is a member of Administrators.
func IsAdmin() bool {
	var adminSID *windows.SID

	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&adminSID,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(adminSID)

	member, err := windows.Token(0).IsMember(adminSID)
	if err != nil {
		return false
	}
	return member
}
