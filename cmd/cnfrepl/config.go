package main

import (
	"strconv"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// flagConfig is a configuration built from command line flags.
type flagConfig map[string]string

func (c flagConfig) InitDefaults() {
	if _, ok := c["tracing"]; !ok {
		c["tracing"] = "go"
	}
}

func (c flagConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c flagConfig) GetString(key string) string {
	return c[key]
}

func (c flagConfig) GetInt(key string) int {
	n, err := strconv.Atoi(c[key])
	if err != nil {
		return 0
	}
	return n
}

func (c flagConfig) GetBool(key string) bool {
	b, err := strconv.ParseBool(c[key])
	return err == nil && b
}

func (c flagConfig) IsInteractive() bool {
	return c.GetBool("interactive")
}

// setupConfig makes the flag values available through gconf and installs the
// Go log adapter for all tracers.
func setupConfig(conf flagConfig, level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
}
