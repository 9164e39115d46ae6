package fstab

// FileSystemType identifies a filesystem this agent knows how to format.
type FileSystemType string

const (
	FileSystemExt4 FileSystemType = "ext4"
	FileSystemF2FS FileSystemType = "f2fs"
	FileSystemVFAT FileSystemType = "vfat"

	// FileSystemUnsupported marks a type string outside the known set.
	FileSystemUnsupported FileSystemType = ""
)

// ParseFileSystemType maps a raw fstab type string onto the closed set of
// supported filesystems. Matching is exact and case-sensitive.
func ParseFileSystemType(raw string) FileSystemType {
	switch FileSystemType(raw) {
	case FileSystemExt4:
		return FileSystemExt4
	case FileSystemF2FS:
		return FileSystemF2FS
	case FileSystemVFAT:
		return FileSystemVFAT
	default:
		return FileSystemUnsupported
	}
}

// Entry describes one mountable partition as declared by the fstab
// configuration. Entries are supplied by the caller and are read-only to
// this agent.
type Entry struct {
	BlkDevice  string `json:"blk_device"`
	MountPoint string `json:"mount_point"`
	FsType     string `json:"fs_type"`

	// Length is the declared partition length in bytes; 0 means the whole
	// block device.
	Length uint64 `json:"length"`

	FsCompress  bool `json:"fs_compress"`
	ExtMetaCsum bool `json:"ext_meta_csum"`
}
