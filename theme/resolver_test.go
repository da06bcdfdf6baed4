package theme_test

import (
	"errors"
	"testing"

	"bennypowers.dev/csstheme/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefault(t *testing.T) {
	tests := []struct {
		name     string
		rawPath  string
		basePath string
		want     string
	}{
		{"appends extension", "colors", "/themes/default", "/themes/default/colors.css"},
		{"keeps existing extension", "colors.css", "/themes/default", "/themes/default/colors.css"},
		{"trailing slash on base path", "colors", "/themes/default/", "/themes/default/colors.css"},
		{"extension match ignores case", "colors.CSS", "/themes/default", "/themes/default/colors.CSS"},
		{"other extensions are completed", "colors.scss", "/themes/default", "/themes/default/colors.scss.css"},
		{"subdirectories", "dark/colors", "/themes", "/themes/dark/colors.css"},
		{"relative base path", "colors", "themes", "themes/colors.css"},
		{"windows base path is not rewritten", "colors", `C:\themes`, `C:\themes/colors.css`},
		{"no normalization", "../shared/colors", "/themes/default", "/themes/default/../shared/colors.css"},
		{"empty raw path", "", "/themes", "/themes/.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := theme.ResolveDefault(tt.rawPath, &theme.Config{BasePath: tt.basePath})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDefaultMissingBasePath(t *testing.T) {
	for name, cfg := range map[string]*theme.Config{
		"nil config":      nil,
		"empty base path": {},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := theme.ResolveDefault("colors", cfg)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, theme.ErrConfiguration))

			var cfgErr *theme.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "themePath", cfgErr.Field)
			assert.Contains(t, err.Error(), "no theme path set")
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := &theme.Config{Options: map[string]any{"suffix": "-dark", "count": 3}}

	v, ok := cfg.Option("count")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = cfg.Option("missing")
	assert.False(t, ok)

	assert.Equal(t, "-dark", cfg.StringOption("suffix"))
	assert.Equal(t, "", cfg.StringOption("count"), "non-string options read as empty")

	var nilCfg *theme.Config
	assert.Equal(t, "", nilCfg.StringOption("suffix"))
}

func TestSuffixResolver(t *testing.T) {
	cfg := &theme.Config{
		BasePath: "/themes/default",
		Options:  map[string]any{theme.SuffixOption: "-test"},
	}

	got, err := theme.SuffixResolver("colors", cfg, theme.ResolveDefault, theme.Source{})
	require.NoError(t, err)
	assert.Equal(t, "/themes/default/colors-test.css", got)

	t.Run("explicit extension", func(t *testing.T) {
		cfg := &theme.Config{
			BasePath: "/themes/default",
			Options:  map[string]any{theme.SuffixOption: ".min"},
		}
		got, err := theme.SuffixResolver("colors.css", cfg, theme.ResolveDefault, theme.Source{})
		require.NoError(t, err)
		assert.Equal(t, "/themes/default/colors.css.min.css", got)
	})

	t.Run("without a suffix it matches the default", func(t *testing.T) {
		got, err := theme.SuffixResolver("colors", &theme.Config{BasePath: "/t"}, theme.ResolveDefault, theme.Source{})
		require.NoError(t, err)
		assert.Equal(t, "/t/colors.css", got)
	})
}
