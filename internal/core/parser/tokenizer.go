package parser

import (
	"sort"
	"strings"

	"github.com/allanrobert0203/tp/internal/core/commands"
)

// Prefix marks the start of an argument, e.g. "n/" in "add n/James".
type Prefix string

// Argument prefixes.
const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixStage   Prefix = "s/"
	PrefixTag     Prefix = "t/"
)

func (p Prefix) String() string {
	return string(p)
}

// ArgumentMultimap maps prefixes to the values that followed them.
// Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes appeared more than once.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) > 0 {
		return &ParseError{Message: commands.MessageDuplicateFields + strings.Join(dups, " ")}
	}
	return nil
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// follows whitespace, so "a/b" inside a value such as an email is left alone.
// Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		m.values[pos.prefix] = append(m.values[pos.prefix], strings.TrimSpace(args[valueStart:valueEnd]))
	}
	return m
}

func findPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		idx := strings.Index(args[from:], string(p))
		if idx < 0 {
			return out
		}
		idx += from
		if idx > 0 && isSpace(args[idx-1]) {
			out = append(out, prefixPosition{prefix: p, start: idx})
		}
		from = idx + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
