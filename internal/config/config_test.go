package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Sections, 4)
	assert.Equal(t, "town_commands", cfg.Sections[0].Placeholder)
	assert.Equal(t, "NodesAdminCommand.kt", cfg.Sections[3].Source)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "cmddoc.yml"))
	require.NoError(t, err)

	assert.Equal(t, "testdata", cfg.Root)
	assert.Equal(t, "plugin/src", cfg.SourceTree)
	assert.Equal(t, 2, cfg.SearchDepth)
	assert.Equal(t, "commands", cfg.SourceDir)
	assert.Equal(t, "docs/template.md", cfg.Template)
	assert.Equal(t, []Section{
		{Placeholder: "town_commands", Source: "TownCommand.kt"},
		{Placeholder: "war_commands", Source: "WarCommand.kt"},
	}, cfg.Sections)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Root = dir
	assert.Equal(t, want, cfg)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("templat: typo.md\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "no sections",
			mutate:  func(c *Config) { c.Sections = nil },
			wantMsg: "Sections is required",
		},
		{
			name: "duplicate placeholders",
			mutate: func(c *Config) {
				c.Sections = []Section{{Placeholder: "a", Source: "A.kt"}, {Placeholder: "a", Source: "B.kt"}}
			},
			wantMsg: "Sections has duplicate placeholders",
		},
		{
			name:    "placeholder with braces",
			mutate:  func(c *Config) { c.Sections[0].Placeholder = "{town_commands}" },
			wantMsg: "must not contain braces",
		},
		{
			name:    "missing template",
			mutate:  func(c *Config) { c.Template = "" },
			wantMsg: "Template is required",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantMsg: "Logging.Format must be one of",
		},
		{
			name:    "search depth too deep",
			mutate:  func(c *Config) { c.SearchDepth = 99 },
			wantMsg: "SearchDepth failed lte=16",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(" war_commands = WarCommand.kt ")
	require.NoError(t, err)
	assert.Equal(t, Section{Placeholder: "war_commands", Source: "WarCommand.kt"}, s)

	for _, bad := range []string{"", "war_commands", "=WarCommand.kt", "war_commands="} {
		_, err := ParseSection(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveFindsSourceTreeInParent(t *testing.T) {
	repo := t.TempDir()
	tree := filepath.Join(repo, "nodes", "src")
	require.NoError(t, os.MkdirAll(tree, 0o755))
	scripts := filepath.Join(repo, "scripts")
	require.NoError(t, os.MkdirAll(scripts, 0o755))

	cfg := Default()
	cfg.Root = scripts
	res, err := cfg.Resolve()
	require.NoError(t, err)

	commands := filepath.Join(tree, "main", "kotlin", "phonon", "nodes", "commands")
	assert.Equal(t, commands, res.SourceDir)
	assert.Equal(t, filepath.Join(scripts, "commands_template.md"), res.Template)
	assert.Equal(t, filepath.Join(scripts, "docs", "src", "2-commands.md"), res.Output)
	assert.Equal(t, filepath.Join(commands, "TownCommand.kt"), res.Sections[0].Source)
}

func TestResolveWithoutSourceTree(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Root = root
	cfg.SourceTree = ""
	cfg.SourceDir = "src"
	cfg.Output = "-"
	cfg.Sections = []Section{{Placeholder: "x", Source: "/abs/X.kt"}}

	res, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src"), res.SourceDir)
	assert.Equal(t, "-", res.Output)
	assert.Equal(t, filepath.Clean("/abs/X.kt"), res.Sections[0].Source)
}

func TestFindSourceTreeMissing(t *testing.T) {
	start := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(start, 0o755))

	_, err := FindSourceTree(start, "nodes/src", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceTreeNotFound))
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
}
