package main

import (
	"strings"

	"github.com/five82/reps/internal/app"
)

type commandContext struct {
	configFlag *string
	prefsFlag  *string
	verbose    *bool
}

func newCommandContext(configFlag, prefsFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		prefsFlag:  prefsFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) options() app.Options {
	var opts app.Options
	if c.configFlag != nil {
		opts.ConfigPath = strings.TrimSpace(*c.configFlag)
	}
	if c.prefsFlag != nil {
		opts.PrefsPath = strings.TrimSpace(*c.prefsFlag)
	}
	if c.verbose != nil {
		opts.Verbose = *c.verbose
	}
	return opts
}

// withRuntime builds the wired components, runs fn and flushes the log.
func (c *commandContext) withRuntime(fn func(*app.Runtime) error) error {
	rt, err := app.Build(c.options())
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(rt)
}
