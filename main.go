// Package main provides the aboutsys command: a small always-on-top window
// showing the bundled logo and the operating system identity string. The
// window closes when Escape is released.
package main

import (
	"os"

	"gioui.org/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"aboutsys/assets"
	"aboutsys/shell"
	"aboutsys/sysinfo"
)

var log = logrus.New()

var osExit = os.Exit

// main is the entry point. Startup happens before any window exists, so a
// failure exits with its own code and no window is shown.
func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCmd(assets.Default(), sysinfo.Host()).Execute(); err != nil {
		log.Error(err)
		osExit(exitCode(err))
	}
}

func newRootCmd(res assets.Resources, src sysinfo.Source) *cobra.Command {
	var opts options
	c := &cobra.Command{
		Use:   "aboutsys",
		Short: "Show the logo and operating system identity in a small window",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				log.SetLevel(logrus.DebugLevel)
			}
			s, err := startup(res, src, opts)
			if err != nil {
				return err
			}
			go func() {
				err := s.run()
				if err != nil {
					log.Error(err)
				}
				osExit(exitCode(err))
			}()
			app.Main()
			return nil
		},
	}
	c.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := c.Flags()
	flags.StringVar(&opts.layout, "layout", shell.LayoutCentered.String(), "label layout: centered or heading")
	flags.IntVar(&opts.labelMargin, "label-margin", 0, "label area height in dp (0 uses the layout default)")
	flags.StringVar(&opts.title, "title", shell.DefaultConfig().Title, "window title")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return c
}
