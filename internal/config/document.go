package config

import (
	"strings"
)

// Pair is a recognized key = value line.
type Pair struct {
	Key   string
	Value string
}

// String formats the pair the way it is written to the config file.
func (p Pair) String() string {
	return p.Key + " = " + p.Value
}

// Scope reports whether a key belongs to one logical section of the file.
type Scope func(key string) bool

type line struct {
	raw   string
	key   string
	value string
	pair  bool
}

func parseLine(raw string) line {
	l := line{raw: raw}
	if strings.TrimSpace(raw) == "" {
		return l
	}
	key, value, found := strings.Cut(raw, "=")
	if !found {
		return l
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return l
	}
	l.key = key
	l.value = strings.TrimSpace(value)
	l.pair = true
	return l
}

// Document is the config file as an ordered list of lines. Lines that are not
// key = value pairs are kept verbatim.
type Document struct {
	lines []line
}

// ParseDocument splits raw file content into a document. A single trailing
// newline does not produce an extra blank line.
func ParseDocument(raw string) *Document {
	return NewDocument(splitLines(raw))
}

// NewDocument builds a document from already split lines.
func NewDocument(lines []string) *Document {
	d := &Document{lines: make([]line, 0, len(lines))}
	for _, raw := range lines {
		d.lines = append(d.lines, parseLine(raw))
	}
	return d
}

func splitLines(raw string) []string {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

// Pairs returns the recognized pairs in file order, duplicates included.
func (d *Document) Pairs() []Pair {
	pairs := make([]Pair, 0, len(d.lines))
	for _, l := range d.lines {
		if l.pair {
			pairs = append(pairs, Pair{Key: l.key, Value: l.value})
		}
	}
	return pairs
}

// Entry is one line of a document with its 1-based line number.
type Entry struct {
	Number int
	Raw    string
	// Pair is only meaningful when IsPair is set.
	Pair   Pair
	IsPair bool
}

// Entries returns every line of the document, pairs or not.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.lines))
	for i, l := range d.lines {
		out[i] = Entry{Number: i + 1, Raw: l.raw, IsPair: l.pair}
		if l.pair {
			out[i].Pair = Pair{Key: l.key, Value: l.value}
		}
	}
	return out
}

// Lookup returns the value of the last occurrence of key.
func (d *Document) Lookup(key string) (string, bool) {
	for i := len(d.lines) - 1; i >= 0; i-- {
		if d.lines[i].pair && d.lines[i].key == key {
			return d.lines[i].value, true
		}
	}
	return "", false
}

// Replace drops every pair owned by scope and appends pairs at the end,
// leaving all other lines in place.
func (d *Document) Replace(scope Scope, pairs ...Pair) {
	kept := d.lines[:0]
	for _, l := range d.lines {
		if l.pair && scope(l.key) {
			continue
		}
		kept = append(kept, l)
	}
	d.lines = kept
	for _, p := range pairs {
		d.lines = append(d.lines, parseLine(p.String()))
	}
}

// Lines returns the document content line by line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.raw
	}
	return out
}

// String joins the lines with a single newline.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

func keySet(keys ...string) Scope {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(key string) bool {
		_, ok := set[key]
		return ok
	}
}
