// Package config loads and resolves the settings of a documentation run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file picked up from the root when no path is given.
const DefaultFile = ".cmddoc.yml"

// Section binds a template placeholder to the source file documenting it.
type Section struct {
	Placeholder string `yaml:"placeholder" validate:"required,excludesall={}"`
	Source      string `yaml:"source" validate:"required"`
}

// Logging selects the logger level and output format.
type Logging struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json pretty"`
}

// Config describes one generation run. Relative paths resolve against Root.
type Config struct {
	Root string `yaml:"root"`
	// SourceTree is searched for from Root and up to SearchDepth parents.
	// Leave it empty to use SourceDir relative to Root directly.
	SourceTree  string `yaml:"source_tree"`
	SearchDepth int    `yaml:"search_depth" validate:"gte=0,lte=16"`
	// SourceDir is the directory, inside the source tree, holding the
	// section sources.
	SourceDir string    `yaml:"source_dir"`
	Template  string    `yaml:"template" validate:"required"`
	Output    string    `yaml:"output" validate:"required"`
	Sections  []Section `yaml:"sections" validate:"required,min=1,unique=Placeholder,dive"`
	Logging   Logging   `yaml:"logging"`
}

// Default returns the layout of a nodes plugin checkout.
func Default() Config {
	return Config{
		Root:        ".",
		SourceTree:  filepath.Join("nodes", "src"),
		SearchDepth: 1,
		SourceDir:   filepath.Join("main", "kotlin", "phonon", "nodes", "commands"),
		Template:    "commands_template.md",
		Output:      filepath.Join("docs", "src", "2-commands.md"),
		Sections: []Section{
			{Placeholder: "town_commands", Source: "TownCommand.kt"},
			{Placeholder: "nation_commands", Source: "NationCommand.kt"},
			{Placeholder: "nodes_commands", Source: "NodesCommand.kt"},
			{Placeholder: "nodesadmin_commands", Source: "NodesAdminCommand.kt"},
		},
		Logging: Logging{Level: "info", Format: "console"},
	}
}

// Load reads a YAML config file and layers it over Default. Relative paths in
// the file resolve against the file's directory unless root is set.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, wrapValidationError(fmt.Errorf("parse %s: %w", path, err))
	}
	if file.Root == "" {
		file.Root = filepath.Dir(path)
	} else if !filepath.IsAbs(file.Root) {
		file.Root = filepath.Join(filepath.Dir(path), file.Root)
	}
	return Merge(Default(), file), nil
}

// Merge returns base with every non-zero field of override applied.
func Merge(base, override Config) Config {
	out := base
	if override.Root != "" {
		out.Root = override.Root
	}
	if override.SourceTree != "" {
		out.SourceTree = override.SourceTree
	}
	if override.SearchDepth != 0 {
		out.SearchDepth = override.SearchDepth
	}
	if override.SourceDir != "" {
		out.SourceDir = override.SourceDir
	}
	if override.Template != "" {
		out.Template = override.Template
	}
	if override.Output != "" {
		out.Output = override.Output
	}
	if len(override.Sections) > 0 {
		out.Sections = append([]Section(nil), override.Sections...)
	}
	if override.Logging.Level != "" {
		out.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		out.Logging.Format = override.Logging.Format
	}
	return out
}

// ParseSection parses a "placeholder=source" pair.
func ParseSection(spec string) (Section, error) {
	name, source, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	source = strings.TrimSpace(source)
	if !ok || name == "" || source == "" {
		return Section{}, wrapValidationError(fmt.Errorf("section %q: want placeholder=source", spec))
	}
	return Section{Placeholder: name, Source: source}, nil
}
