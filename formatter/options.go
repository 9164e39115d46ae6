package formatter

import (
	"github.com/openmobile/fsformat/fstab"
	"github.com/openmobile/fsformat/settings"
)

const (
	// CasefoldSettingName and ProjIDSettingName are the system-wide toggles
	// consulted for the primary data partition.
	CasefoldSettingName = "external_storage.casefold.enabled"
	ProjIDSettingName   = "external_storage.projid.enabled"

	userDataMountPoint = "/data"
)

// OptionsForEntry derives format options for an entry. Only the primary
// data partition consults the system-wide casefold/projid toggles; all
// other mount points get them disabled.
func OptionsForEntry(entry fstab.Entry, service settings.Service, cryptFooter bool) Options {
	opts := Options{CryptFooter: cryptFooter}

	if entry.MountPoint == userDataMountPoint {
		opts.Casefold = service.GetBool(CasefoldSettingName, false)
		opts.ProjID = service.GetBool(ProjIDSettingName, false)
	}

	return opts
}
