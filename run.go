package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/cmddoc/internal/config"
	"github.com/agentflare-ai/cmddoc/internal/docgen"
	"github.com/agentflare-ai/cmddoc/internal/logging"
)

type options struct {
	configPath string
	root       string
	sourceDir  string
	template   string
	outputPath string
	sections   []string
	logLevel   string
	logFormat  string
}

type previewOptions struct {
	html  bool
	width int
	style string
}

type cliApp struct {
	stdout  io.Writer
	opts    options
	preview previewOptions
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context) error {
	gen, err := app.generator()
	if err != nil {
		return err
	}
	return gen.Run(ctx, app.stdout)
}

func (app *cliApp) generator() (*docgen.Generator, error) {
	cfg, err := app.loadConfig()
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	provider, err := logging.NewProvider(logging.Config{
		Level:  resolved.Logging.Level,
		Format: resolved.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	return docgen.New(resolved, provider.GetLogger("cmddoc")), nil
}

// loadConfig layers, lowest first: built-in defaults, the config file, flags.
func (app *cliApp) loadConfig() (config.Config, error) {
	opts := app.opts
	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		root := opts.root
		if root == "" {
			root = "."
		}
		candidate := filepath.Join(root, config.DefaultFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	override := config.Config{
		Root:     opts.root,
		Template: opts.template,
		Output:   opts.outputPath,
		Logging:  config.Logging{Level: opts.logLevel, Format: opts.logFormat},
	}
	for _, spec := range opts.sections {
		section, err := config.ParseSection(spec)
		if err != nil {
			return config.Config{}, err
		}
		override.Sections = append(override.Sections, section)
	}
	cfg = config.Merge(cfg, override)
	if opts.sourceDir != "" {
		// An explicit source directory skips source tree discovery.
		cfg.SourceTree = ""
		cfg.SourceDir = opts.sourceDir
	}
	return cfg, nil
}

var legacyLongFlagSet = map[string]struct{}{
	"config":     {},
	"root":       {},
	"src":        {},
	"template":   {},
	"output":     {},
	"section":    {},
	"log-level":  {},
	"log-format": {},
	"html":       {},
	"width":      {},
	"style":      {},
}

// normalizeLegacyArgs rewrites single-dash long flags ("-src dir") to their
// double-dash form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		value := ""
		if idx := strings.Index(name, "="); idx > 0 {
			name, value = name[:idx], name[idx:]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name+value)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
