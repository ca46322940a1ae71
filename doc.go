// # cmddoc
//
// `cmddoc` generates a markdown command reference from tagged comment blocks in
// source files, so command docs are written once, next to the code that
// implements them, and never edited by hand.
//
// Key capabilities:
//
//   - scan `/** ... */` blocks for `@command` and `@subcommand` markers and
//     turn each marker plus its description lines into one markdown list item.
//   - nest subcommands under the command that precedes them.
//   - substitute the list generated for each source file into a named
//     `{placeholder}` of a markdown template and write the result.
//   - locate the source tree by searching the root directory and its parents.
//   - preview the generated document in the terminal or as HTML.
//   - ship a Cobra-powered CLI with `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Comment Format
//
// A marker is the second word of a line inside a block. The words after the
// marker name the entry; a leading invocation root such as `/town` is dropped
// from the rendered name. Lines that follow are the description:
//
//	/**
//	 * @command /town claim
//	 * Claim the territory you are standing in.
//	 * @subcommand force
//	 * Claim even when the territory borders an enemy.
//	 */
//
// renders as
//
//	- **claim**: Claim the territory you are standing in.
//	   - **force**: Claim even when the territory borders an enemy.
//
// An entry ends at the next marker, at the end of the block, or at a line with
// fewer than two words (such as a bare ` * `). Markers with no name and text
// outside an entry are ignored; malformed comments never fail a run.
//
// ## Usage
//
//	go run . [flags]
//
// Examples:
//
//   - Regenerate the docs of a checkout using the default layout:
//
//     go run . --root ./scripts
//
//   - Print the fragment for a single file:
//
//     go run . parse nodes/src/main/kotlin/phonon/nodes/commands/TownCommand.kt
//
//   - Render with custom sections and print to stdout:
//
//     go run . -t docs/template.md -o - --section war_commands=WarCommand.kt
//
// ## Configuration
//
// Settings are read from `.cmddoc.yml` in the root directory (or the file
// given with `--config`) and overridden by flags:
//
//	source_tree: nodes/src
//	search_depth: 1
//	source_dir: main/kotlin/phonon/nodes/commands
//	template: commands_template.md
//	output: docs/src/2-commands.md
//	sections:
//	  - placeholder: town_commands
//	    source: TownCommand.kt
//	logging:
//	  level: info
//	  format: console
//
// Relative paths resolve against the root, which defaults to the directory of
// the config file. Without a config file the values above are used, with the
// town, nation, nodes and nodesadmin command sections.
//
// ## Supported Flags
//
// These apply to the root command; `preview` accepts all of them except
// `--output`.
//
//   - `-c, --config`: YAML config file.
//   - `--root`: directory that relative paths resolve against.
//   - `--src`: directory holding the sources; skips source tree discovery.
//   - `-t, --template`: markdown template with `{placeholder}` markers.
//   - `-o, --output`: output file, or `-` for stdout.
//   - `--section placeholder=source`: repeatable; replaces configured sections.
//   - `--log-level`, `--log-format`: logger settings.
//
// Long flags may also be written with a single dash (`-src dir`).
//
// ## Shell Completion
//
//	go run . completion bash        # bash
//	go run . completion zsh         # zsh
//	go run . completion fish | source
//	go run . completion powershell | Out-String | Invoke-Expression
package main
