package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"bennypowers.dev/csstheme/internal/config"
	"bennypowers.dev/csstheme/internal/documents"
	"bennypowers.dev/csstheme/internal/log"
	"bennypowers.dev/csstheme/internal/processor"
	"bennypowers.dev/csstheme/theme"
)

// ErrNoInputs is returned when neither arguments nor configuration name any files
var ErrNoInputs = errors.New("no input files: pass paths or patterns, or set \"files\" in configuration")

// BuildCmd rewrites theme() calls
type BuildCmd struct {
	Patterns      []string `arg:"" optional:"" help:"Files or doublestar patterns to process (default: configured files)"`
	ThemePath     string   `help:"Base directory theme paths resolve against" short:"t"`
	Suffix        string   `help:"Suffix appended to every theme path before resolution, e.g. -dark"`
	OutDir        string   `help:"Write results under this directory, mirroring the project layout" short:"o" xor:"output"`
	Write         bool     `help:"Rewrite files in place" short:"w" xor:"output"`
	StdinFilename string   `help:"Read one document from stdin and print the result; the name's extension selects the language" placeholder:"NAME" xor:"output"`
}

// Run executes the build command
func (cmd *BuildCmd) Run(ctx *Context) error {
	cfg, err := loadConfig(ctx.Root, config.Config{
		ThemePath: cmd.ThemePath,
		Suffix:    cmd.Suffix,
		Files:     cmd.Patterns,
	})
	if err != nil {
		return err
	}

	var manager *documents.Manager
	if cmd.StdinFilename != "" {
		manager, err = readStdin(ctx.Stdin, cmd.StdinFilename)
	} else {
		manager, err = loadDocuments(ctx.Root, cfg.Files)
	}
	if err != nil {
		return err
	}

	proc := processor.New(newPlugin(cfg))
	for _, doc := range manager.GetAll() {
		out, err := proc.Process(doc)
		if err != nil {
			return err
		}
		if err := cmd.emit(ctx, doc, out); err != nil {
			return err
		}
	}

	return nil
}

// emit writes one processed document to its destination
func (cmd *BuildCmd) emit(ctx *Context, doc *documents.Document, out string) error {
	switch {
	case cmd.Write:
		if out == doc.Content() {
			log.Debug("Unchanged %s", doc.Path())
			return nil
		}
		return writeFile(doc.Path(), out)

	case cmd.OutDir != "":
		rel, err := filepath.Rel(ctx.Root, doc.Path())
		if err != nil || !filepath.IsLocal(rel) {
			rel = filepath.Base(doc.Path())
		}
		return writeFile(filepath.Join(cmd.OutDir, rel), out)

	default:
		_, err := fmt.Fprint(ctx.Stdout, out)
		return err
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // G306: output stylesheets are world-readable
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Wrote %s", path)
	return nil
}

// loadConfig reads project configuration and applies flag overrides
func loadConfig(root string, flags config.Config) (config.Config, error) {
	file, err := config.Load(root)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config.Merge(file, flags), nil
}

// loadDocuments expands patterns and reads every matching file
func loadDocuments(root string, patterns []string) (*documents.Manager, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInputs
	}

	paths, err := documents.Expand(root, patterns)
	if err != nil {
		return nil, err
	}

	manager := documents.NewManager()
	for _, path := range paths {
		if _, err := manager.Load(path); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// readStdin opens the document read from r under name
func readStdin(r io.Reader, name string) (*documents.Manager, error) {
	languageID := documents.LanguageForPath(name)
	if languageID == "" {
		return nil, fmt.Errorf("%w: %s", documents.ErrUnsupportedLanguage, name)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	manager := documents.NewManager()
	manager.Open(name, languageID, string(content))
	return manager, nil
}

// newPlugin creates the theme plugin for a configuration. A suffix selects
// the suffix resolver.
func newPlugin(cfg config.Config) *theme.Plugin {
	opts := theme.Options{
		ThemePath: cfg.ThemePath,
		Extra:     maps.Clone(cfg.Options),
	}
	if cfg.Suffix != "" {
		if opts.Extra == nil {
			opts.Extra = map[string]any{}
		}
		opts.Extra[theme.SuffixOption] = cfg.Suffix
		opts.ThemeFileResolver = theme.SuffixResolver
	}
	return theme.New(opts)
}
