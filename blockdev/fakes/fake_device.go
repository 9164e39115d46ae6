package fakes

import (
	"errors"
	"io"

	"github.com/openmobile/fsformat/blockdev"
)

type FakeDevice struct {
	DevicePath string

	// Contents backs positioned reads; reads past the end are short.
	Contents []byte

	Size    uint64
	SizeErr error
	ReadErr error

	Closed bool
}

func (d *FakeDevice) Path() string { return d.DevicePath }

func (d *FakeDevice) ReadAt(p []byte, off int64) (int, error) {
	if d.ReadErr != nil {
		return 0, d.ReadErr
	}
	if off >= int64(len(d.Contents)) {
		return 0, io.EOF
	}
	n := copy(p, d.Contents[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (d *FakeDevice) SizeBytes() (uint64, error) {
	if d.SizeErr != nil {
		return 0, d.SizeErr
	}
	return d.Size, nil
}

func (d *FakeDevice) Close() error {
	d.Closed = true
	return nil
}

type FakeOpener struct {
	Devices map[string]*FakeDevice

	OpenErr   error
	OpenPaths []string
}

func NewFakeOpener() *FakeOpener {
	return &FakeOpener{Devices: map[string]*FakeDevice{}}
}

func (o *FakeOpener) RegisterDevice(dev *FakeDevice) {
	o.Devices[dev.DevicePath] = dev
}

func (o *FakeOpener) OpenReadOnly(path string) (blockdev.Device, error) {
	o.OpenPaths = append(o.OpenPaths, path)

	if o.OpenErr != nil {
		return nil, o.OpenErr
	}

	dev, found := o.Devices[path]
	if !found {
		return nil, errors.New("no such device: " + path)
	}
	return dev, nil
}
