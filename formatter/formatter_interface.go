package formatter

import (
	"github.com/openmobile/fsformat/fstab"
)

// CryptFooterOffset is the byte length reserved at the end of a block device
// for full-disk-encryption metadata. It is excluded from the usable
// filesystem region when the caller requests a crypt footer.
const CryptFooterOffset uint64 = 0x4000

// Options carries the caller-provided toggles for a format or resize
// operation. The dispatcher is a pure function of the entry and these
// options; it never reads ambient state.
type Options struct {
	// CryptFooter reserves CryptFooterOffset bytes at the end of the device.
	CryptFooter bool

	// ProjID enables project-ID quota support. Project IDs require wider
	// inode structures at format time; the quotas themselves are enabled by
	// tune2fs during boot.
	ProjID bool

	// Casefold enables directory-name case folding (f2fs only at format
	// time; ext4 casefolding is enabled via tune2fs during boot).
	Casefold bool
}

// Formatter formats and resizes partitions by invoking the external
// filesystem utilities.
//
// Both methods return an integer status alongside the error: 0 on success,
// the utility's own exit status when a delegated invocation fails, and a
// negative errno-style code when the failure is local (unsupported type,
// device query failure). Any non-zero status means the filesystem must not
// be trusted; no cleanup is attempted.
//
// Invocations write to the target block device and are destructive. Callers
// must serialize access to a given device themselves.
type Formatter interface {
	Format(entry fstab.Entry, opts Options) (int, error)
	Resize(entry fstab.Entry, opts Options) (int, error)
}
