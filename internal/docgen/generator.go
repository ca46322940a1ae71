// Package docgen runs the documentation pipeline: parse each configured source
// into a fragment, substitute the fragments into the template, write the
// result.
package docgen

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/agentflare-ai/cmddoc/internal/cmddoc"
	"github.com/agentflare-ai/cmddoc/internal/config"
	"github.com/agentflare-ai/cmddoc/internal/logging"
	"github.com/agentflare-ai/cmddoc/internal/mdtemplate"
)

// Generator renders the command reference for one resolved config.
type Generator struct {
	cfg    config.Resolved
	logger logging.Logger
}

// New constructs a Generator. A nil logger discards output.
func New(cfg config.Resolved, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Fragments parses every section source, in config order. Each source is
// scanned with a fresh parser.
func (g *Generator) Fragments(ctx context.Context) ([]mdtemplate.Fragment, error) {
	fragments := make([]mdtemplate.Fragment, 0, len(g.cfg.Sections))
	for _, section := range g.cfg.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := EntriesFile(section.Source)
		if err != nil {
			return nil, err
		}
		g.logger.Debug("section parsed",
			"placeholder", section.Placeholder,
			"source", section.Source,
			"entries", len(entries),
		)
		fragments = append(fragments, mdtemplate.Fragment{
			Name: section.Placeholder,
			Text: cmddoc.Render(entries),
		})
	}
	return fragments, nil
}

// Render returns the template with every section fragment substituted.
func (g *Generator) Render(ctx context.Context) ([]byte, error) {
	tmpl, err := mdtemplate.Read(g.cfg.Template)
	if err != nil {
		return nil, wrapIOError("read template", g.cfg.Template, err)
	}
	fragments, err := g.Fragments(ctx)
	if err != nil {
		return nil, err
	}
	out, missing := tmpl.Apply(fragments)
	for _, name := range missing {
		g.logger.Warn("placeholder not found in template",
			"placeholder", mdtemplate.Placeholder(name),
			"template", g.cfg.Template,
		)
	}
	return []byte(out), nil
}

// Run renders the document and writes it to the configured output, using
// stdout when the output is "-".
func (g *Generator) Run(ctx context.Context, stdout io.Writer) error {
	data, err := g.Render(ctx)
	if err != nil {
		return err
	}
	if err := WriteOutput(g.cfg.Output, stdout, data); err != nil {
		return err
	}
	if g.cfg.Output != "-" {
		g.logger.Info("commands documentation written",
			"output", g.cfg.Output,
			"sections", len(g.cfg.Sections),
		)
	}
	return nil
}

// ParseFile returns the rendered fragment for one source file.
func ParseFile(path string) (string, error) {
	entries, err := EntriesFile(path)
	if err != nil {
		return "", err
	}
	return cmddoc.Render(entries), nil
}

// EntriesFile returns the documented entries of one source file.
func EntriesFile(path string) ([]cmddoc.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIOError("open source", path, err)
	}
	defer f.Close()
	entries, err := cmddoc.Entries(f)
	if err != nil {
		return nil, wrapIOError("read source", path, err)
	}
	return entries, nil
}

// WriteOutput writes data to path, creating parent directories, or to stdout
// when path is empty or "-".
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapIOError("create output directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapIOError("write output", path, err)
	}
	return nil
}
