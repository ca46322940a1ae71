package cmddoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryRender(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "command without description",
			entry: Entry{Kind: KindCommand, Name: "delete"},
			want:  "- **delete**:\n",
		},
		{
			name:  "command with description",
			entry: Entry{Kind: KindCommand, Root: "/n", Name: "join <node>", Text: []string{"Join a node"}},
			want:  "- **join <node>**: Join a node\n",
		},
		{
			name:  "subcommand joins groups with spaces",
			entry: Entry{Kind: KindSubcommand, Name: "force", Text: []string{"Force", "claim"}},
			want:  "   - **force**: Force claim\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Render())
		})
	}
}

func TestNewEntrySplitsRoot(t *testing.T) {
	e := newEntry(KindCommand, []string{"/town", "create", "[name]"})
	assert.Equal(t, "/town", e.Root)
	assert.Equal(t, "create [name]", e.Name)

	lone := newEntry(KindCommand, []string{"/town"})
	assert.Empty(t, lone.Root)
	assert.Equal(t, "/town", lone.Name)

	plain := newEntry(KindSubcommand, []string{"force", "now"})
	assert.Empty(t, plain.Root)
	assert.Equal(t, "force now", plain.Name)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "subcommand", KindSubcommand.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
