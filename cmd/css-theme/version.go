package main

import (
	"fmt"

	"bennypowers.dev/csstheme/internal/version"
)

// VersionCmd prints version information
type VersionCmd struct {
	Verbose bool `help:"Include build time and Go version" short:"v"`
}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	info := version.Get()
	if _, err := fmt.Fprintf(ctx.Stdout, "css-theme %s\n", info); err != nil {
		return err
	}
	if !cmd.Verbose {
		return nil
	}
	_, err := fmt.Fprintf(ctx.Stdout, "built:  %s\ngo:     %s\n", info.BuildTime, info.GoVersion)
	return err
}
