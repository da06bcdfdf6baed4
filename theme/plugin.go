package theme

import (
	"maps"

	"bennypowers.dev/csstheme/internal/log"
	"bennypowers.dev/csstheme/internal/stylesheet"
)

// Options configures a Plugin
type Options struct {
	// ThemePath is the base directory theme paths resolve against
	ThemePath string
	// ThemeFileResolver optionally replaces the default resolver
	ThemeFileResolver ResolverFunc
	// Extra holds caller-defined options, available to resolvers via Config.Options
	Extra map[string]any
}

// Plugin rewrites theme() calls in stylesheets
type Plugin struct {
	config *Config
}

// New creates a plugin. Options are not validated here; a missing theme
// path is reported when a stylesheet is processed.
func New(opts Options) *Plugin {
	return &Plugin{
		config: &Config{
			BasePath: opts.ThemePath,
			Resolver: opts.ThemeFileResolver,
			Options:  maps.Clone(opts.Extra),
		},
	}
}

// Config returns the configuration passed to resolvers
func (p *Plugin) Config() *Config {
	return p.config
}

// Process rewrites theme() calls in every declaration value and at-rule
// parameter list of the stylesheet, in source order.
//
// Without a custom resolver a theme path must be configured; otherwise
// Process fails with a ConfigurationError before touching the tree. Errors
// raised while resolving are returned as *stylesheet.NodeError values that
// unwrap to the resolver's error.
func (p *Plugin) Process(root *stylesheet.Root) error {
	if p.config.Resolver == nil && p.config.BasePath == "" {
		return errNoThemePath()
	}

	return root.Walk(func(n stylesheet.Node) error {
		switch n := n.(type) {
		case *stylesheet.Decl:
			v, err := p.transform(root, n, n.Value)
			if err != nil {
				return err
			}
			n.Value = v
		case *stylesheet.AtRule:
			params, err := p.transform(root, n, n.Params)
			if err != nil {
				return err
			}
			n.Params = params
		}
		return nil
	})
}

// ProcessString parses a stylesheet, processes it and serializes the result
func (p *Plugin) ProcessString(file, source string) (string, error) {
	root := stylesheet.Parse(file, source)
	if err := p.Process(root); err != nil {
		return "", err
	}
	return root.String(), nil
}

func (p *Plugin) transform(root *stylesheet.Root, n stylesheet.Node, v string) (string, error) {
	return Transform(v, func(rawPath string) (string, error) {
		pos := root.Position(n.Offset())
		src := Source{File: root.File, Line: pos.Line, Column: pos.Column}
		return p.resolve(rawPath, src)
	})
}

func (p *Plugin) resolve(rawPath string, src Source) (string, error) {
	var (
		resolved string
		err      error
	)
	if p.config.Resolver != nil {
		resolved, err = p.config.Resolver(rawPath, p.config, ResolveDefault, src)
	} else {
		resolved, err = ResolveDefault(rawPath, p.config)
	}
	if err != nil {
		return "", err
	}

	log.Debug("Resolved theme(%s) at %s:%d:%d to %s", rawPath, src.File, src.Line, src.Column, resolved)
	return resolved, nil
}
