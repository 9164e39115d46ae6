package blockdev

import "io"

// Device is an open read-only handle on a block device.
type Device interface {
	io.ReaderAt
	io.Closer

	Path() string

	// SizeBytes returns the raw byte size of the device.
	SizeBytes() (uint64, error)
}

// Opener opens block devices for reading.
type Opener interface {
	OpenReadOnly(path string) (Device, error)
}
