package fakes

import (
	boshformatter "github.com/openmobile/fsformat/formatter"
	"github.com/openmobile/fsformat/fstab"
)

type FakeFormatter struct {
	FormatCalled  bool
	FormatEntries []fstab.Entry
	FormatOpts    []boshformatter.Options
	FormatStatus  int
	FormatErr     error

	ResizeCalled  bool
	ResizeEntries []fstab.Entry
	ResizeOpts    []boshformatter.Options
	ResizeStatus  int
	ResizeErr     error
}

func (f *FakeFormatter) Format(entry fstab.Entry, opts boshformatter.Options) (int, error) {
	f.FormatCalled = true
	f.FormatEntries = append(f.FormatEntries, entry)
	f.FormatOpts = append(f.FormatOpts, opts)
	return f.FormatStatus, f.FormatErr
}

func (f *FakeFormatter) Resize(entry fstab.Entry, opts boshformatter.Options) (int, error) {
	f.ResizeCalled = true
	f.ResizeEntries = append(f.ResizeEntries, entry)
	f.ResizeOpts = append(f.ResizeOpts, opts)
	return f.ResizeStatus, f.ResizeErr
}
