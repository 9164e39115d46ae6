// Package f2fs reads just enough of the f2fs on-disk superblock to decide
// whether a filesystem needs resizing. It is not an f2fs implementation.
package f2fs

import (
	"encoding/binary"
	"io"
)

const (
	// SuperMagic is the f2fs superblock magic number.
	SuperMagic uint32 = 0xF2F52010

	// BlockSize is the fixed f2fs block size in bytes.
	BlockSize uint64 = 4096

	// SuperOffset is the byte offset of the primary superblock from the
	// start of the device. A backup copy sits one block further in, at
	// BlockSize + SuperOffset.
	SuperOffset int64 = 1024

	// superblockLen covers the leading superblock fields through
	// block_count; the rest of the on-disk record is irrelevant here.
	superblockLen = 44

	magicOffset      = 0
	majorVerOffset   = 4
	minorVerOffset   = 6
	checksumOffset   = 32
	blockCountOffset = 36
)

// Superblock holds the leading fields of an f2fs superblock. All on-disk
// fields are little-endian.
type Superblock struct {
	Magic          uint32
	MajorVersion   uint16
	MinorVersion   uint16
	ChecksumOffset uint32
	BlockCount     uint64
}

// FilesystemSizeBytes returns the size of the filesystem described by the
// superblock.
func (sb Superblock) FilesystemSizeBytes() uint64 {
	return sb.BlockCount * BlockSize
}

// DecodeSuperblock decodes a superblock from a raw byte buffer. It reports
// false when the buffer is too short or the magic does not match.
func DecodeSuperblock(buf []byte) (Superblock, bool) {
	if len(buf) < superblockLen {
		return Superblock{}, false
	}

	magic := binary.LittleEndian.Uint32(buf[magicOffset:])
	if magic != SuperMagic {
		return Superblock{}, false
	}

	return Superblock{
		Magic:          magic,
		MajorVersion:   binary.LittleEndian.Uint16(buf[majorVerOffset:]),
		MinorVersion:   binary.LittleEndian.Uint16(buf[minorVerOffset:]),
		ChecksumOffset: binary.LittleEndian.Uint32(buf[checksumOffset:]),
		BlockCount:     binary.LittleEndian.Uint64(buf[blockCountOffset:]),
	}, true
}

// ReadSuperblock probes the primary superblock offset and then the backup
// copy, returning the first record with a valid magic. Short reads and bad
// magics are soft failures; either copy may be stale depending on device
// state.
func ReadSuperblock(r io.ReaderAt) (Superblock, bool) {
	for _, offset := range []int64{SuperOffset, int64(BlockSize) + SuperOffset} {
		buf := make([]byte, superblockLen)
		n, err := r.ReadAt(buf, offset)
		if err != nil && n < superblockLen {
			continue
		}

		sb, ok := DecodeSuperblock(buf)
		if ok {
			return sb, true
		}
	}

	return Superblock{}, false
}
