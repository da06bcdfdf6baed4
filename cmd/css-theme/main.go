package main

import (
	"io"
	"os"

	"bennypowers.dev/csstheme/internal/log"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context is shared by all commands
type Context struct {
	// Root is the project directory: configuration is discovered there and
	// relative patterns are expanded against it
	Root   string
	Stdin  io.Reader
	Stdout io.Writer
}

// App is the command line grammar
type App struct {
	LogLevel string `help:"Minimum log level (${enum})" default:"warn" enum:"debug,info,warn,error"`
	Dir      string `help:"Project root for configuration discovery" default:"." type:"existingdir" short:"C"`
	NoColor  bool   `help:"Disable colored output"`

	Build   BuildCmd   `cmd:"" help:"Rewrite theme() calls in stylesheets, HTML and JS/TS modules"`
	List    ListCmd    `cmd:"" help:"List theme() calls with their locations"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("css-theme"),
		kong.Description("Resolve theme(<path>) calls in CSS to quoted theme file paths."),
		kong.UsageOnError(),
	)

	if app.NoColor {
		color.NoColor = true
	}
	if level, ok := log.ParseLevel(app.LogLevel); ok {
		log.SetLevel(level)
	}

	err := ctx.Run(&Context{Root: app.Dir, Stdin: os.Stdin, Stdout: os.Stdout})
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
