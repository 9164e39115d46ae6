package main

import (
	"os"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/spf13/cobra"

	"github.com/openmobile/fsformat/blockdev"
	"github.com/openmobile/fsformat/formatter"
	"github.com/openmobile/fsformat/fstab"
	"github.com/openmobile/fsformat/settings"
)

const mainLogTag = "main"

func main() {
	var (
		logLevel     string
		fstabPath    string
		settingsPath string
		cryptFooter  bool
	)

	logger := boshlog.NewLogger(boshlog.LevelError)
	defer logger.HandlePanic("Main")

	rootCmd := &cobra.Command{
		Use:           "fsformat",
		Short:         "Format and resize partitions declared in an fstab file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := boshlog.Levelify(logLevel)
			if err != nil {
				return err
			}
			logger = boshlog.NewLogger(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&fstabPath, "fstab", "/etc/fsformat/fstab.json", "path to the fstab file")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "/etc/fsformat/settings.json", "path to the system settings file")
	rootCmd.PersistentFlags().BoolVar(&cryptFooter, "crypt-footer", false, "reserve the crypt footer at the end of the device")

	run := func(mountPoint string, op func(formatter.Formatter, fstab.Entry, formatter.Options) (int, error)) error {
		fs := boshsys.NewOsFileSystem(logger)
		runner := boshsys.NewExecCmdRunner(logger)
		opener := blockdev.NewLinuxOpener(logger)

		entries, err := fstab.LoadEntries(fs, fstabPath)
		if err != nil {
			return err
		}

		entry, found := fstab.FindByMountPoint(entries, mountPoint)
		if !found {
			return bosherr.Errorf("No fstab entry for mount point '%s'", mountPoint)
		}

		service := settings.NewFileService(fs, settingsPath, logger)
		err = service.LoadSettings()
		if err != nil {
			return err
		}

		opts := formatter.OptionsForEntry(entry, service, cryptFooter)
		fmtr := formatter.NewLinuxFormatter(runner, opener, clock.NewClock(), logger)

		status, err := op(fmtr, entry, opts)
		if err != nil {
			logger.Error(mainLogTag, "Operation on '%s' failed with status %d: %s", entry.BlkDevice, status, err.Error())
			return err
		}

		logger.Info(mainLogTag, "Operation on '%s' finished with status %d", entry.BlkDevice, status)
		return nil
	}

	formatCmd := &cobra.Command{
		Use:   "format <mount-point>",
		Short: "Format the partition mounted at the given mount point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], func(f formatter.Formatter, entry fstab.Entry, opts formatter.Options) (int, error) {
				return f.Format(entry, opts)
			})
		},
	}

	resizeCmd := &cobra.Command{
		Use:   "resize <mount-point>",
		Short: "Resize the partition mounted at the given mount point (f2fs only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], func(f formatter.Formatter, entry fstab.Entry, opts formatter.Options) (int, error) {
				return f.Resize(entry, opts)
			})
		},
	}

	rootCmd.AddCommand(formatCmd, resizeCmd)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error(mainLogTag, "fsformat %s", err.Error())
		os.Exit(1)
	}
}
