package f2fs_test

import (
	"bytes"
	"encoding/binary"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/openmobile/fsformat/f2fs"
)

func rawSuperblock(magic uint32, blockCount uint64) []byte {
	buf := make([]byte, 44)
	binary.LittleEndian.PutUint32(buf[0:], magic)
	binary.LittleEndian.PutUint16(buf[4:], 1)  // major version
	binary.LittleEndian.PutUint16(buf[6:], 14) // minor version
	binary.LittleEndian.PutUint32(buf[32:], 4092)
	binary.LittleEndian.PutUint64(buf[36:], blockCount)
	return buf
}

// deviceImage lays records out on a fabricated device, 4096-aligned plus the
// superblock offset, as on a real f2fs partition.
func deviceImage(primary, backup []byte) []byte {
	image := make([]byte, 8192)
	copy(image[1024:], primary)
	copy(image[4096+1024:], backup)
	return image
}

var _ = Describe("DecodeSuperblock", func() {
	It("decodes the fields of a valid record", func() {
		sb, ok := DecodeSuperblock(rawSuperblock(SuperMagic, 262144))
		Expect(ok).To(BeTrue())
		Expect(sb.Magic).To(Equal(SuperMagic))
		Expect(sb.MajorVersion).To(Equal(uint16(1)))
		Expect(sb.MinorVersion).To(Equal(uint16(14)))
		Expect(sb.ChecksumOffset).To(Equal(uint32(4092)))
		Expect(sb.BlockCount).To(Equal(uint64(262144)))
	})

	It("rejects a record with the wrong magic", func() {
		_, ok := DecodeSuperblock(rawSuperblock(0xEF53, 262144))
		Expect(ok).To(BeFalse())
	})

	It("rejects a truncated record", func() {
		_, ok := DecodeSuperblock(rawSuperblock(SuperMagic, 262144)[:20])
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ReadSuperblock", func() {
	It("returns the primary copy when its magic is valid", func() {
		garbage := bytes.Repeat([]byte{0xAB}, 44)
		image := deviceImage(rawSuperblock(SuperMagic, 100), garbage)

		sb, found := ReadSuperblock(bytes.NewReader(image))
		Expect(found).To(BeTrue())
		Expect(sb.BlockCount).To(Equal(uint64(100)))
	})

	It("falls back to the backup copy when the primary magic is invalid", func() {
		image := deviceImage(rawSuperblock(0, 100), rawSuperblock(SuperMagic, 200))

		sb, found := ReadSuperblock(bytes.NewReader(image))
		Expect(found).To(BeTrue())
		Expect(sb.BlockCount).To(Equal(uint64(200)))
	})

	It("reports not found when both copies are invalid", func() {
		image := deviceImage(rawSuperblock(0, 100), rawSuperblock(1, 200))

		_, found := ReadSuperblock(bytes.NewReader(image))
		Expect(found).To(BeFalse())
	})

	It("reports not found when the device is too small for either copy", func() {
		_, found := ReadSuperblock(bytes.NewReader(make([]byte, 512)))
		Expect(found).To(BeFalse())
	})

	It("tolerates a short primary read when the backup is valid", func() {
		image := deviceImage(rawSuperblock(0, 0), rawSuperblock(SuperMagic, 300))
		image = image[:4096+1024+44]

		sb, found := ReadSuperblock(bytes.NewReader(image))
		Expect(found).To(BeTrue())
		Expect(sb.BlockCount).To(Equal(uint64(300)))
	})
})

var _ = Describe("Superblock", func() {
	It("derives the filesystem size from the block count", func() {
		sb := Superblock{BlockCount: 262144}
		Expect(sb.FilesystemSizeBytes()).To(Equal(uint64(1073741824)))
	})
})
