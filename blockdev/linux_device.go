package blockdev

import (
	"os"
	"unsafe"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"golang.org/x/sys/unix"
)

type linuxOpener struct {
	logger boshlog.Logger
	logTag string
}

func NewLinuxOpener(logger boshlog.Logger) Opener {
	return linuxOpener{
		logger: logger,
		logTag: "LinuxBlockDevice",
	}
}

func (o linuxOpener) OpenReadOnly(path string) (Device, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Opening block device '%s'", path)
	}

	o.logger.Debug(o.logTag, "Opened '%s' read-only", path)

	return &linuxDevice{path: path, file: file}, nil
}

type linuxDevice struct {
	path string
	file *os.File
}

func (d *linuxDevice) Path() string { return d.path }

func (d *linuxDevice) ReadAt(p []byte, off int64) (int, error) {
	return d.file.ReadAt(p, off)
}

func (d *linuxDevice) SizeBytes() (uint64, error) {
	var size uint64
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		d.file.Fd(),
		unix.BLKGETSIZE64,
		uintptr(unsafe.Pointer(&size)),
	)
	if errno != 0 {
		return 0, bosherr.WrapErrorf(errno, "Getting size of block device '%s'", d.path)
	}

	return size, nil
}

func (d *linuxDevice) Close() error {
	return d.file.Close()
}
