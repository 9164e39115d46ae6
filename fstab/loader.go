package fstab

import (
	"encoding/json"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// LoadEntries reads a JSON fstab file containing an array of entries.
func LoadEntries(fs boshsys.FileSystem, path string) ([]Entry, error) {
	contents, err := fs.ReadFile(path)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading fstab file '%s'", path)
	}

	var entries []Entry
	err = json.Unmarshal(contents, &entries)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Parsing fstab file '%s'", path)
	}

	return entries, nil
}

// FindByMountPoint returns the first entry declaring the given mount point.
func FindByMountPoint(entries []Entry, mountPoint string) (Entry, bool) {
	for _, entry := range entries {
		if entry.MountPoint == mountPoint {
			return entry, true
		}
	}
	return Entry{}, false
}
