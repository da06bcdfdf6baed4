package theme

import "strings"

// DefaultExtension is appended to theme paths that do not already end in it
const DefaultExtension = ".css"

// SuffixOption is the Config option read by SuffixResolver
const SuffixOption = "suffix"

// Config is the resolution configuration of one plugin instance.
// It is built once by New and must not be modified afterwards.
type Config struct {
	// BasePath is the directory theme paths are joined to
	BasePath string
	// Resolver, when set, replaces ResolveDefault for every theme() call
	Resolver ResolverFunc
	// Options holds caller-defined settings for custom resolvers
	Options map[string]any
}

// Option returns the caller-defined option stored under key
func (c *Config) Option(key string) (any, bool) {
	if c == nil || c.Options == nil {
		return nil, false
	}
	v, ok := c.Options[key]
	return v, ok
}

// StringOption returns the option stored under key if it is a string, or ""
func (c *Config) StringOption(key string) string {
	v, _ := c.Option(key)
	s, _ := v.(string)
	return s
}

// Source locates the stylesheet node whose theme() call is being resolved
type Source struct {
	File   string
	Line   int
	Column int
}

// DefaultResolverFunc is the signature of ResolveDefault
type DefaultResolverFunc func(rawPath string, cfg *Config) (string, error)

// ResolverFunc is a custom theme file resolver.
//
// It receives the raw theme() argument, the plugin's Config (the same
// pointer on every call), the default resolver to delegate to, and the
// location of the node being transformed. Errors are returned to the caller
// of Process without being wrapped by this package.
type ResolverFunc func(rawPath string, cfg *Config, resolveDefault DefaultResolverFunc, src Source) (string, error)

// ResolveDefault resolves a raw theme path against cfg.BasePath.
//
// ".css" is appended unless the path already ends with it (in any case), and
// the result is joined to the base path with exactly one "/". The join never
// uses the host path separator: resolved paths end up in CSS strings, not in
// file system calls. No normalization or existence check is performed.
func ResolveDefault(rawPath string, cfg *Config) (string, error) {
	if cfg == nil || cfg.BasePath == "" {
		return "", errNoThemePath()
	}

	if !hasDefaultExtension(rawPath) {
		rawPath += DefaultExtension
	}

	if strings.HasSuffix(cfg.BasePath, "/") {
		return cfg.BasePath + rawPath, nil
	}
	return cfg.BasePath + "/" + rawPath, nil
}

// SuffixResolver appends the "suffix" option to the raw path and delegates
// to the default resolver, so theme(colors) with suffix "-dark" resolves to
// <base>/colors-dark.css. A path written with its extension keeps it:
// theme(colors.css) resolves to <base>/colors.css-dark.css.
func SuffixResolver(rawPath string, cfg *Config, resolveDefault DefaultResolverFunc, _ Source) (string, error) {
	return resolveDefault(rawPath+cfg.StringOption(SuffixOption), cfg)
}

func hasDefaultExtension(path string) bool {
	n := len(DefaultExtension)
	return len(path) >= n && strings.EqualFold(path[len(path)-n:], DefaultExtension)
}
