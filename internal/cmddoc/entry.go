package cmddoc

import "strings"

// Kind distinguishes top-level commands from nested subcommands.
type Kind int

const (
	KindCommand Kind = iota
	KindSubcommand
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindSubcommand:
		return "subcommand"
	default:
		return "unknown"
	}
}

// prefix is the list markup placed before the entry name.
func (k Kind) prefix() string {
	if k == KindSubcommand {
		return "   - "
	}
	return "- "
}

// Entry is one documented command or subcommand.
type Entry struct {
	Kind Kind
	// Root is the invocation root written before the name, such as "/town".
	// It is empty when the marker text did not start with one.
	Root string
	Name string
	// Text holds one space-joined group per continuation line.
	Text []string
}

func newEntry(kind Kind, words []string) Entry {
	e := Entry{Kind: kind}
	if len(words) > 1 && strings.HasPrefix(words[0], "/") {
		e.Root = words[0]
		words = words[1:]
	}
	e.Name = strings.Join(words, " ")
	return e
}

// extend returns a copy of e with words appended as a new text group. The
// receiver's Text is never shared with the result.
func (e Entry) extend(words []string) Entry {
	text := make([]string, len(e.Text), len(e.Text)+1)
	copy(text, e.Text)
	e.Text = append(text, strings.Join(words, " "))
	return e
}

// Description joins the accumulated text groups.
func (e Entry) Description() string {
	return strings.Join(e.Text, " ")
}

// Render formats e as a single newline-terminated markdown list item.
func (e Entry) Render() string {
	var b strings.Builder
	b.WriteString(e.Kind.prefix())
	b.WriteString("**")
	b.WriteString(e.Name)
	b.WriteString("**:")
	for _, group := range e.Text {
		b.WriteByte(' ')
		b.WriteString(group)
	}
	b.WriteByte('\n')
	return b.String()
}

// Render concatenates the rendered form of every entry.
func Render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Render())
	}
	return b.String()
}
