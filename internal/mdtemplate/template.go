// Package mdtemplate substitutes named {placeholder} markers in a markdown
// template with generated fragments.
package mdtemplate

import (
	"os"
	"strings"
)

// Fragment is the text generated for one named placeholder.
type Fragment struct {
	Name string
	Text string
}

// Template is a markdown document containing {name} placeholders.
type Template struct {
	text string
}

// New wraps template text.
func New(text string) *Template {
	return &Template{text: text}
}

// Read loads a template from disk. Errors are returned as produced by the os
// package.
func Read(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(string(data)), nil
}

// Placeholder returns the marker text for name.
func Placeholder(name string) string {
	return "{" + name + "}"
}

// Has reports whether the template contains the placeholder for name.
func (t *Template) Has(name string) bool {
	return strings.Contains(t.text, Placeholder(name))
}

func (t *Template) String() string {
	return t.text
}

// Apply replaces every placeholder named by a fragment in a single pass, so
// fragment text is never scanned for further placeholders. It returns the
// names of fragments whose placeholder does not appear in the template.
func (t *Template) Apply(fragments []Fragment) (string, []string) {
	var (
		pairs   = make([]string, 0, len(fragments)*2)
		missing []string
	)
	for _, f := range fragments {
		if !t.Has(f.Name) {
			missing = append(missing, f.Name)
			continue
		}
		pairs = append(pairs, Placeholder(f.Name), f.Text)
	}
	if len(pairs) == 0 {
		return t.text, missing
	}
	return strings.NewReplacer(pairs...).Replace(t.text), missing
}
