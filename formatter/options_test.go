package formatter_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/openmobile/fsformat/formatter"
	"github.com/openmobile/fsformat/fstab"
	fakesettings "github.com/openmobile/fsformat/settings/fakes"
)

var _ = Describe("OptionsForEntry", func() {
	var service *fakesettings.FakeService

	BeforeEach(func() {
		service = fakesettings.NewFakeService()
	})

	It("consults the system-wide toggles for the data partition", func() {
		service.Bools[CasefoldSettingName] = true
		service.Bools[ProjIDSettingName] = true

		opts := OptionsForEntry(fstab.Entry{MountPoint: "/data"}, service, false)
		Expect(opts.Casefold).To(BeTrue())
		Expect(opts.ProjID).To(BeTrue())
		Expect(opts.CryptFooter).To(BeFalse())
	})

	It("defaults the toggles to false when unset", func() {
		opts := OptionsForEntry(fstab.Entry{MountPoint: "/data"}, service, false)
		Expect(opts.Casefold).To(BeFalse())
		Expect(opts.ProjID).To(BeFalse())
	})

	It("never consults the toggles for other mount points", func() {
		service.Bools[CasefoldSettingName] = true
		service.Bools[ProjIDSettingName] = true

		opts := OptionsForEntry(fstab.Entry{MountPoint: "/cache"}, service, true)
		Expect(opts.Casefold).To(BeFalse())
		Expect(opts.ProjID).To(BeFalse())
		Expect(opts.CryptFooter).To(BeTrue())
		Expect(service.GetBoolNames).To(BeEmpty())
	})
})
