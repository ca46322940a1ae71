// Package cmddoc extracts command reference entries from tagged comment blocks.
//
// A documentation block opens with a line starting with "/**" and closes with a
// line starting with "*/". Inside a block, the second whitespace-delimited word
// of a line may be one of two markers:
//
//	/**
//	 * @command /town create [name]
//	 * Create a new town with the specified name at location.
//	 *
//	 * @subcommand force
//	 * Skip the confirmation prompt.
//	 */
//
// Words following a marker name the entry. Later lines in the same block are
// appended to the entry's description until another marker, a line with fewer
// than two words, or the end of the block. Each finished entry renders as one
// markdown list item, with subcommands nested under the preceding command:
//
//	- **create [name]**: Create a new town with the specified name at location.
//	   - **force**: Skip the confirmation prompt.
//
// Malformed input never fails a parse. Stray text, bare markers and
// unterminated blocks are recovered from silently; only read errors from the
// underlying reader are returned.
package cmddoc
