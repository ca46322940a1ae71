package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"

	"github.com/agentflare-ai/cmddoc/internal/docgen"
)

const rootLongDesc = `
cmddoc builds a command reference page from tagged comment blocks.

Each source file is scanned for /** ... */ blocks. Inside a block, a line whose
second word is @command or @subcommand starts a new entry, and the lines that
follow describe it:

  /**
   * @command /town create [name]
   * Create a new town with the specified name at location.
   */

Every entry becomes one markdown list item. The list generated for each
configured source replaces its {placeholder} in the markdown template, and the
result is written to the output file.

Settings come from .cmddoc.yml in the root directory when present; flags
override the file. Without either, the nodes plugin layout is used.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "cmddoc [flags]",
		Short:         "Generate markdown command docs from tagged comments",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	bindConfigFlags(cmd.Flags(), &app.opts)
	cmd.Flags().StringVarP(&app.opts.outputPath, "output", "o", "", "write the document to this file, or - for stdout")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(commandContext(cmd))
	}

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// bindConfigFlags registers the flags that shape a generation run. Only the
// commands that generate the full document take them.
func bindConfigFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file (default: <root>/.cmddoc.yml when present)")
	flags.StringVar(&opts.root, "root", "", "directory that relative paths resolve against")
	flags.StringVar(&opts.sourceDir, "src", "", "directory holding the section sources (skips source tree discovery)")
	flags.StringVarP(&opts.template, "template", "t", "", "markdown template containing {placeholder} markers")
	flags.StringArrayVar(&opts.sections, "section", nil, "placeholder=source pair; repeat to replace the configured sections")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console, json, pretty")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the markdown fragment for source files",
		Long: strings.TrimSpace(`
Print the rendered entries of each source file without touching the template.
With more than one file, each fragment is preceded by an HTML comment naming
its source.
`),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeFragments(cmd.OutOrStdout(), args)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "list FILE",
		Short:         "List the documented entries of a source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := docgen.EntriesFile(args[0])
			if err != nil {
				return err
			}
			return writeEntryListing(cmd.OutOrStdout(), entries)
		},
	}
}

func newPreviewCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the generated document for the terminal or as HTML",
		Long: strings.TrimSpace(`
Generate the document exactly like the root command, but print it styled for
the terminal instead of writing the output file. With --html the document is
converted to an HTML fragment.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	bindConfigFlags(flags, &app.opts)
	flags.BoolVar(&app.preview.html, "html", false, "emit HTML instead of terminal output")
	flags.IntVar(&app.preview.width, "width", 100, "word wrap width for terminal output")
	flags.StringVar(&app.preview.style, "style", "", "glamour style (dark, light, notty, ...); detected when empty")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		gen, err := app.generator()
		if err != nil {
			return err
		}
		doc, err := gen.Render(commandContext(cmd))
		if err != nil {
			return err
		}
		return writePreview(cmd.OutOrStdout(), doc, app.preview)
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for cmddoc.

The output should be evaluated by your shell. For example:

  # bash
  cmddoc completion bash > /usr/local/etc/bash_completion.d/cmddoc

  # zsh
  cmddoc completion zsh > "${fpath[1]}/_cmddoc"

  # fish
  cmddoc completion fish | source

  # PowerShell
  cmddoc completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  cmddoc gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
