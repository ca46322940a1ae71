package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolved is a validated Config with every path made absolute.
type Resolved struct {
	Root      string
	SourceDir string
	Template  string
	// Output is an absolute path, or "-" for stdout.
	Output   string
	Sections []Section
	Logging  Logging
}

// Resolve validates c, locates the source tree and returns absolute paths.
func (c Config) Resolve() (Resolved, error) {
	if err := c.Validate(); err != nil {
		return Resolved{}, err
	}
	root := c.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Resolved{}, wrapValidationError(fmt.Errorf("root %q: %w", c.Root, err))
	}

	base := root
	if c.SourceTree != "" {
		tree, err := FindSourceTree(root, c.SourceTree, c.SearchDepth)
		if err != nil {
			return Resolved{}, err
		}
		base = tree
	}
	srcDir := join(base, c.SourceDir)

	out := Resolved{
		Root:      root,
		SourceDir: srcDir,
		Template:  join(root, c.Template),
		Output:    c.Output,
		Sections:  make([]Section, 0, len(c.Sections)),
		Logging:   c.Logging,
	}
	if c.Output != "-" {
		out.Output = join(root, c.Output)
	}
	for _, s := range c.Sections {
		out.Sections = append(out.Sections, Section{Placeholder: s.Placeholder, Source: join(srcDir, s.Source)})
	}
	return out, nil
}

// FindSourceTree looks for the directory rel under start, then under each of
// up to depth parent directories, returning the first match.
func FindSourceTree(start, rel string, depth int) (string, error) {
	dir := start
	for i := 0; i <= depth; i++ {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", wrapSourceTreeError(fmt.Errorf("%w: %s (searched from %s, %d parent(s) up)", ErrSourceTreeNotFound, rel, start, depth))
}

func join(base, path string) string {
	if path == "" {
		return base
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
