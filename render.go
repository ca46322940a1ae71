package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agentflare-ai/cmddoc/internal/cmddoc"
	"github.com/agentflare-ai/cmddoc/internal/docgen"
)

func writeFragments(w io.Writer, paths []string) error {
	for i, path := range paths {
		fragment, err := docgen.ParseFile(path)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "<!-- %s -->\n", path)
		}
		if _, err := io.WriteString(w, fragment); err != nil {
			return err
		}
	}
	return nil
}

func writeEntryListing(w io.Writer, entries []cmddoc.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tROOT\tNAME\tDESCRIPTION")
	for _, e := range entries {
		root := e.Root
		if root == "" {
			root = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Kind, root, e.Name, e.Description())
	}
	return tw.Flush()
}

func writePreview(w io.Writer, doc []byte, opts previewOptions) error {
	if opts.html {
		out, err := docgen.RenderHTML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	out, err := docgen.RenderTerminal(doc, docgen.TerminalOptions{Width: opts.width, Style: opts.style})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
