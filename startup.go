package main

import (
	"errors"
	"fmt"

	"gioui.org/app"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"aboutsys/assets"
	"aboutsys/gioview"
	"aboutsys/logo"
	"aboutsys/shell"
	"aboutsys/sysinfo"
)

// Process exit codes, one per startup failure kind.
const (
	exitOK = iota
	exitUsage
	exitDecode
	exitSystem
	exitUnsupported
	exitOther
)

// usageError wraps invalid command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return "usage: " + e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// exitCode maps a startup or run error to the process exit code.
func exitCode(err error) int {
	var (
		usage       *usageError
		decode      *logo.DecodeError
		unsupported *sysinfo.UnsupportedPlatformError
		system      *sysinfo.SystemError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usage):
		return exitUsage
	case errors.As(err, &decode):
		return exitDecode
	case errors.As(err, &unsupported):
		return exitUnsupported
	case errors.As(err, &system):
		return exitSystem
	default:
		return exitOther
	}
}

// options are the command-line settings.
type options struct {
	layout      string
	labelMargin int
	title       string
	debug       bool
}

// config turns options into a shell configuration.
func (o options) config() (shell.Config, error) {
	cfg := shell.DefaultConfig()
	l, err := shell.ParseLayout(o.layout)
	if err != nil {
		return cfg, &usageError{err: err}
	}
	cfg.Layout = l
	cfg.LabelMargin = o.labelMargin
	if o.title != "" {
		cfg.Title = o.title
	}
	if err := cfg.Validate(); err != nil {
		return cfg, &usageError{err: err}
	}
	return cfg, nil
}

// session is a fully initialised program, ready to open its window.
type session struct {
	shell *shell.Shell
	theme *material.Theme
	log   *logrus.Entry
}

// startup decodes the logo, reads the identity and builds the theme. It
// returns the first failure; nothing is shown until all steps succeed.
func startup(res assets.Resources, src sysinfo.Source, opts options) (*session, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	img, err := logo.Load(res.Logo)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"width": img.Width(), "height": img.Height()}).Debug("logo decoded")

	identity, err := sysinfo.ReadIdentity(src)
	if err != nil {
		return nil, err
	}
	log.WithField("identity", identity).Debug("identity read")

	if err := res.Validate(); err != nil {
		return nil, err
	}
	cfg.LabelColumns = gioview.LabelColumns(shell.WindowSize(img.Size(), cfg).X)
	th, err := gioview.NewTheme(res.Font, cfg)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	return &session{
		shell: shell.New(img, identity, cfg),
		theme: th,
		log:   log.WithField("component", "window"),
	}, nil
}

// run opens the window and blocks until it is destroyed.
func (s *session) run() error {
	spec := s.shell.Spec()
	s.log.WithFields(logrus.Fields{
		"size":   spec.Size,
		"layout": s.shell.Config().Layout,
	}).Debug("opening window")

	w := new(app.Window)
	w.Option(gioview.Options(spec)...)
	return gioview.Run(w, s.shell, s.theme, s.log)
}
