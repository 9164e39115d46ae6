package formatter

import (
	"strconv"
	"strings"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"golang.org/x/sys/unix"

	"github.com/openmobile/fsformat/blockdev"
	"github.com/openmobile/fsformat/f2fs"
	"github.com/openmobile/fsformat/fstab"
)

const (
	formatBlockSize  uint64 = 4096
	resizeSectorSize uint64 = 512

	// resizeSlackBytes is the margin below which a size discrepancy is not
	// worth an expensive resize.
	resizeSlackBytes uint64 = 4096 * 1024
)

const (
	statusOK = 0

	// statusDeviceFailure reports a failed device open or size query.
	statusDeviceFailure = -1

	// statusInvalidArgument reports an unsupported filesystem type.
	statusInvalidArgument = -int(unix.EINVAL)
)

type linuxFormatter struct {
	runner      boshsys.CmdRunner
	opener      blockdev.Opener
	timeService clock.Clock

	logger boshlog.Logger
	logTag string
}

func NewLinuxFormatter(
	runner boshsys.CmdRunner,
	opener blockdev.Opener,
	timeService clock.Clock,
	logger boshlog.Logger,
) Formatter {
	return linuxFormatter{
		runner:      runner,
		opener:      opener,
		timeService: timeService,

		logger: logger,
		logTag: "linuxFormatter",
	}
}

func (f linuxFormatter) Format(entry fstab.Entry, opts Options) (int, error) {
	f.logger.Info(f.logTag, "Formatting '%s' as '%s'", entry.BlkDevice, entry.FsType)

	switch fstab.ParseFileSystemType(entry.FsType) {
	case fstab.FileSystemExt4:
		return f.formatExt4(entry, opts)
	case fstab.FileSystemF2FS:
		return f.formatF2FS(entry, opts)
	case fstab.FileSystemVFAT:
		return f.formatVFAT(entry)
	default:
		return statusInvalidArgument, bosherr.Errorf("File system type '%s' is not supported", entry.FsType)
	}
}

func (f linuxFormatter) Resize(entry fstab.Entry, opts Options) (int, error) {
	f.logger.Info(f.logTag, "Resizing '%s' to declared length %d", entry.BlkDevice, entry.Length)

	if fstab.ParseFileSystemType(entry.FsType) != fstab.FileSystemF2FS {
		return statusInvalidArgument, bosherr.Errorf("File system type '%s' is not supported for resize", entry.FsType)
	}

	return f.resizeF2FS(entry, opts)
}

func (f linuxFormatter) formatExt4(entry fstab.Entry, opts Options) (int, error) {
	// ext4 always formats the whole device; the declared length is ignored.
	sizeBytes, err := f.usableSizeBytes(entry.BlkDevice, 0, opts.CryptFooter)
	if err != nil {
		return statusDeviceFailure, err
	}

	args := []string{"-t", "ext4", "-b", "4096"}
	if opts.ProjID {
		args = append(args, "-I", "512")
	}
	if entry.ExtMetaCsum {
		// Metadata checksumming needs 64bit and extent to cover the full
		// metadata surface; tune2fs complains otherwise.
		args = append(args, "-O", "metadata_csum", "-O", "64bit", "-O", "extent")
	}
	args = append(args, entry.BlkDevice, strconv.FormatUint(sizeBytes/formatBlockSize, 10))

	exitStatus, err := f.runCommand("mke2fs", args...)
	if err != nil {
		return exitStatus, bosherr.WrapError(err, "Shelling out to mke2fs")
	}

	// Seed the root directory structure and SELinux contexts from the mount
	// point's policy.
	exitStatus, err = f.runCommand("e2fsdroid", "-e", "-a", entry.MountPoint, entry.BlkDevice)
	if err != nil {
		return exitStatus, bosherr.WrapError(err, "Shelling out to e2fsdroid")
	}

	return statusOK, nil
}

func (f linuxFormatter) formatF2FS(entry fstab.Entry, opts Options) (int, error) {
	sizeBytes, err := f.usableSizeBytes(entry.BlkDevice, entry.Length, opts.CryptFooter)
	if err != nil {
		return statusDeviceFailure, err
	}

	args := []string{"-g", "android"}
	if opts.ProjID {
		args = append(args, "-O", "project_quota,extra_attr")
	}
	if opts.Casefold {
		args = append(args, "-O", "casefold", "-C", "utf8")
	}
	if entry.FsCompress {
		args = append(args, "-O", "compression", "-O", "extra_attr")
	}
	args = append(args, entry.BlkDevice, strconv.FormatUint(sizeBytes/formatBlockSize, 10))

	exitStatus, err := f.runCommand("make_f2fs", args...)
	if err != nil {
		return exitStatus, bosherr.WrapError(err, "Shelling out to make_f2fs")
	}

	return statusOK, nil
}

func (f linuxFormatter) formatVFAT(entry fstab.Entry) (int, error) {
	if !f.runner.CommandExists("newfs_msdos") {
		f.logger.Info(f.logTag, "newfs_msdos not found in PATH, attempting anyway")
	}

	exitStatus, err := f.runCommand("newfs_msdos", "-O", "android", entry.BlkDevice)
	if err != nil {
		return exitStatus, bosherr.WrapError(err, "Shelling out to newfs_msdos")
	}

	return statusOK, nil
}

func (f linuxFormatter) resizeF2FS(entry fstab.Entry, opts Options) (int, error) {
	device, err := f.opener.OpenReadOnly(entry.BlkDevice)
	if err != nil {
		return statusDeviceFailure, err
	}
	defer device.Close()

	targetBytes := entry.Length
	if targetBytes == 0 {
		targetBytes, err = device.SizeBytes()
		if err != nil {
			return statusDeviceFailure, err
		}
	}
	if opts.CryptFooter {
		targetBytes -= CryptFooterOffset
	}

	sb, found := f2fs.ReadSuperblock(device)
	if !found || sb.BlockCount == 0 {
		f.logger.Info(f.logTag, "No valid f2fs superblock on '%s', skipping resize", entry.BlkDevice)
		return statusOK, nil
	}

	currentBytes := sb.FilesystemSizeBytes()
	f.logger.Debug(f.logTag, "Target size %d bytes, current filesystem size %d bytes", targetBytes, currentBytes)

	if targetBytes <= currentBytes+resizeSlackBytes {
		f.logger.Info(f.logTag, "No need to resize '%s'", entry.BlkDevice)
		return statusOK, nil
	}

	sectors := strconv.FormatUint(targetBytes/resizeSectorSize, 10)
	exitStatus, err := f.runCommand("resize.f2fs", "-t", sectors, entry.BlkDevice)
	if err != nil {
		return exitStatus, bosherr.WrapError(err, "Shelling out to resize.f2fs")
	}

	return statusOK, nil
}

// usableSizeBytes resolves the size handed to the external utilities:
// declared length when nonzero, otherwise the raw device size, minus the
// crypt footer when reserved.
func (f linuxFormatter) usableSizeBytes(devicePath string, declaredLength uint64, cryptFooter bool) (uint64, error) {
	sizeBytes := declaredLength

	if sizeBytes == 0 {
		device, err := f.opener.OpenReadOnly(devicePath)
		if err != nil {
			return 0, err
		}
		defer device.Close()

		sizeBytes, err = device.SizeBytes()
		if err != nil {
			return 0, err
		}
	}

	if cryptFooter {
		sizeBytes -= CryptFooterOffset
	}

	return sizeBytes, nil
}

func (f linuxFormatter) runCommand(name string, args ...string) (int, error) {
	f.logger.Debug(f.logTag, "Running %s %s", name, strings.Join(args, " "))

	startedAt := f.timeService.Now()
	_, _, exitStatus, err := f.runner.RunCommand(name, args...)
	f.logger.Debug(f.logTag, "%s finished in %s with status %d", name, f.timeService.Since(startedAt), exitStatus)

	return exitStatus, err
}
