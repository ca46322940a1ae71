package cmddoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	BlockOpen        = "/**"
	BlockClose       = "*/"
	CommandMarker    = "@command"
	SubcommandMarker = "@subcommand"
)

// Classify turns one line from inside a block into an event.
func Classify(line string) Event {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Event{Kind: EventMalformed}
	}
	switch fields[1] {
	case CommandMarker:
		return Event{Kind: EventCommand, Words: fields[2:]}
	case SubcommandMarker:
		return Event{Kind: EventSubcommand, Words: fields[2:]}
	default:
		return Event{Kind: EventContinuation, Words: fields[1:]}
	}
}

// Scanner tracks block membership across lines and drives the accumulator.
// The zero value is ready to use.
type Scanner struct {
	inBlock bool
	state   State
}

// Feed consumes one line of input and reports the entry it finished, if any.
func (s *Scanner) Feed(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	var ev Event
	switch {
	case strings.HasPrefix(trimmed, BlockOpen):
		// Reopening inside a block ends whatever the unterminated block held.
		ev = Event{Kind: EventBlockOpen}
		s.inBlock = true
	case strings.HasPrefix(trimmed, BlockClose):
		ev = Event{Kind: EventBlockClose}
		s.inBlock = false
	case s.inBlock:
		ev = Classify(trimmed)
	default:
		return Entry{}, false
	}
	return s.apply(ev)
}

// Close ends the input, flushing an entry left open by an unterminated block.
func (s *Scanner) Close() (Entry, bool) {
	s.inBlock = false
	return s.apply(Event{Kind: EventEOF})
}

func (s *Scanner) apply(ev Event) (Entry, bool) {
	var (
		flushed Entry
		ok      bool
	)
	s.state, flushed, ok = Step(s.state, ev)
	return flushed, ok
}

// Entries scans r and returns every documented entry in source order. Lines
// may be of any length.
func Entries(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	var (
		s   Scanner
		out []Entry
	)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if e, ok := s.Feed(line); ok {
				out = append(out, e)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cmddoc: read: %w", err)
		}
	}
	if e, ok := s.Close(); ok {
		out = append(out, e)
	}
	return out, nil
}

// Parse scans r and returns the rendered markdown fragment.
func Parse(r io.Reader) (string, error) {
	entries, err := Entries(r)
	if err != nil {
		return "", err
	}
	return Render(entries), nil
}

// ParseLines is Parse over an in-memory sequence of lines.
func ParseLines(lines []string) string {
	var (
		s   Scanner
		out []Entry
	)
	for _, line := range lines {
		if e, ok := s.Feed(line); ok {
			out = append(out, e)
		}
	}
	if e, ok := s.Close(); ok {
		out = append(out, e)
	}
	return Render(out)
}
