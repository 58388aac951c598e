package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/util"
)

type GlobalFlags struct {
	JSON         bool
	EventVersion int
	Config       string
	Project      string
	Verbose      bool
	Watch        bool
}

func resolveProjectRoot(projectFlag string) (string, error) {
	start := projectFlag
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}
	return util.FindProjectRoot(start)
}

type AppContext struct {
	ProjectRoot string
	ConfigPath  string
	Config      core.Config
	Emitter     core.Emitter
	Logger      *slog.Logger
	Flags       GlobalFlags
}

func NewAppContext(flags GlobalFlags) (AppContext, error) {
	return newAppContext(flags, os.Stdout, os.Stderr)
}

// newAppContext resolves the project and config. Events go to out, logs to
// errOut.
func newAppContext(flags GlobalFlags, out, errOut io.Writer) (AppContext, error) {
	root, err := resolveProjectRoot(flags.Project)
	if err != nil {
		return AppContext{}, err
	}
	cfg, err := core.LoadConfig(root, flags.Config)
	if err != nil {
		var verr core.ConfigVersionError
		if errors.As(err, &verr) {
			return AppContext{}, ExitError{Code: 2, Err: err}
		}
		return AppContext{}, err
	}
	emit := core.Emitter(core.NewTextEmitter(out))
	if flags.JSON {
		if flags.EventVersion != core.EventSchemaVersion {
			return AppContext{}, fmt.Errorf("unsupported --event-version %d (supported: %d)", flags.EventVersion, core.EventSchemaVersion)
		}
		emit = core.NewNDJSONEmitter(out, flags.EventVersion)
	}
	cfgPath := flags.Config
	if cfgPath == "" {
		cfgPath = core.ConfigPath(root)
	}
	return AppContext{
		ProjectRoot: root,
		ConfigPath:  cfgPath,
		Config:      cfg,
		Emitter:     emit,
		Logger:      core.NewLogger(errOut, cfg.Log.Level, flags.Verbose),
		Flags:       flags,
	}, nil
}

func PrintFatal(err error) {
	var ee ExitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.Error())
		os.Exit(ee.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e ExitError) Unwrap() error { return e.Err }
