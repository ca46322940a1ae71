package cmddoc

// EventKind classifies a scanned line for the accumulator.
type EventKind int

const (
	EventCommand EventKind = iota + 1
	EventSubcommand
	EventContinuation
	EventBlockOpen
	EventBlockClose
	EventMalformed
	EventEOF
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventSubcommand:
		return "subcommand"
	case EventContinuation:
		return "continuation"
	case EventBlockOpen:
		return "block-open"
	case EventBlockClose:
		return "block-close"
	case EventMalformed:
		return "malformed"
	case EventEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Event is the input to Step. Words carries the marker text for start events
// and the description words for continuations.
type Event struct {
	Kind  EventKind
	Words []string
}

// State is the accumulator state: idle, or accumulating exactly one entry.
// The zero value is idle.
type State struct {
	entry Entry
	open  bool
}

// Accumulating returns the open entry, if any.
func (s State) Accumulating() (Entry, bool) {
	return s.entry, s.open
}

// Step applies ev to s. When ev finishes the open entry, the entry is
// returned along with ok set to true.
func Step(s State, ev Event) (next State, flushed Entry, ok bool) {
	switch ev.Kind {
	case EventContinuation:
		if !s.open || len(ev.Words) == 0 {
			return s, Entry{}, false
		}
		return State{entry: s.entry.extend(ev.Words), open: true}, Entry{}, false
	case EventCommand, EventSubcommand:
		flushed, ok = s.entry, s.open
		if len(ev.Words) == 0 {
			return State{}, flushed, ok
		}
		kind := KindCommand
		if ev.Kind == EventSubcommand {
			kind = KindSubcommand
		}
		return State{entry: newEntry(kind, ev.Words), open: true}, flushed, ok
	default:
		return State{}, s.entry, s.open
	}
}
