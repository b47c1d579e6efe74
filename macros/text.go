package macros

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// piece is a part of the text being expanded. The name token of each
// definition line is held in a piece of its own with isName set so that no
// macro replaces it.
type piece struct {
	text   string
	isName bool
}

// splitText breaks the text into pieces: a piece per line (including the
// trailing newline) except for definition lines which are split into three
// pieces around the name. The defs must have been parsed from this text.
func (e *Expander) splitText(text string, defs []Definition) []piece {
	defLines := make(map[int]Definition, len(defs))
	for _, d := range defs {
		defLines[d.Line] = d
	}

	lines := strings.Split(text, "\n")
	pieces := make([]piece, 0, len(lines)+2*len(defs))
	for i, line := range lines {
		if i < len(lines)-1 {
			line += "\n"
		}

		d, ok := defLines[i+1]
		if !ok {
			pieces = append(pieces, piece{text: line})
			continue
		}

		start := e.nameOffset(line)
		end := start + len(d.Name)
		pieces = append(pieces,
			piece{text: line[:start]},
			piece{text: line[start:end], isName: true},
			piece{text: line[end:]})
	}

	return pieces
}

// nameOffset returns the offset of the name in a definition line. The line
// must already have been successfully parsed as a definition.
func (e *Expander) nameOffset(line string) int {
	start := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
	rest := line[start:]

	if !e.splitWhitespace {
		return start + strings.IndexByte(rest, ' ') + 1
	}

	firstEnd := strings.IndexFunc(rest, unicode.IsSpace)
	rest = rest[firstEnd:]
	gap := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))

	return start + firstEnd + gap
}

// substitute returns a new set of pieces with every whole-word occurrence
// of the definition's name replaced by its value. Name pieces are left
// alone.
func substitute(pieces []piece, d Definition) []piece {
	newPieces := make([]piece, 0, len(pieces))
	for _, p := range pieces {
		if !p.isName {
			p.text = replaceWord(p.text, d.Name, d.Value)
		}
		newPieces = append(newPieces, p)
	}

	return newPieces
}

// replaceWord returns a copy of s with every occurrence of name that is
// neither preceded nor followed by a word character replaced by value. The
// value is inserted literally.
func replaceWord(s, name, value string) string {
	if name == "" {
		return s
	}

	var b strings.Builder
	done := 0
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], name)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(name)

		if isWordBoundary(s, start, end) {
			b.WriteString(s[done:start])
			b.WriteString(value)
			done = end
			from = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	if done == 0 {
		return s
	}
	b.WriteString(s[done:])

	return b.String()
}

// isWordBoundary reports whether s[start:end] stands as a whole word
func isWordBoundary(s string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(s[:start]); start > 0 && isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(s[end:]); end < len(s) && isWordRune(r) {
		return false
	}

	return true
}

// isWordRune reports whether r is a letter, a digit or an underscore
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// joinPieces reassembles the text
func joinPieces(pieces []piece) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.text)
	}

	return b.String()
}
