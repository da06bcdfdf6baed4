package main

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/csstheme/internal/config"
	"bennypowers.dev/csstheme/internal/parser"
	"github.com/fatih/color"
)

var (
	locationFmt = color.New(color.FgCyan).SprintfFunc()
	callFmt     = color.New(color.FgYellow).SprintfFunc()
)

// ListCmd prints the location of every theme() call
type ListCmd struct {
	Patterns []string `arg:"" optional:"" help:"Files or doublestar patterns to scan (default: configured files)"`
}

// Run executes the list command
func (cmd *ListCmd) Run(ctx *Context) error {
	cfg, err := loadConfig(ctx.Root, config.Config{Files: cmd.Patterns})
	if err != nil {
		return err
	}

	manager, err := loadDocuments(ctx.Root, cfg.Files)
	if err != nil {
		return err
	}

	for _, doc := range manager.GetAll() {
		calls, err := parser.FindCalls(doc)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", doc.Path(), err)
		}

		name := doc.Path()
		if rel, err := filepath.Rel(ctx.Root, name); err == nil && filepath.IsLocal(rel) {
			name = rel
		}
		for _, call := range calls {
			// positions are 0-indexed
			_, err := fmt.Fprintf(ctx.Stdout, "%s %s\n",
				locationFmt("%s:%d:%d", name, call.Range.Start.Line+1, call.Range.Start.Character+1),
				callFmt("%s(%s)", call.Name, call.Argument))
			if err != nil {
				return err
			}
		}
	}

	return nil
}
