// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bionic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document transforms a whole Markdown document. A leading front-matter
// block, when present, is passed through verbatim; everything after it goes
// through the word transform.
func Document(text string) string {
	end := frontMatterEnd(text)
	return text[:end] + transformBody(text[end:])
}

// transformBody splits text into alternating whitespace and non-whitespace
// runs, applies Word to each non-whitespace run, and reassembles. Whitespace
// runs are reproduced byte-for-byte.
func transformBody(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	for i := 0; i < len(text); {
		first, _ := utf8.DecodeRuneInString(text[i:])
		space := unicode.IsSpace(first)

		j := i
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if unicode.IsSpace(r) != space {
				break
			}
			j += size
		}

		if space {
			b.WriteString(text[i:j])
		} else {
			b.WriteString(Word(text[i:j]))
		}
		i = j
	}
	return b.String()
}

// frontMatterEnd returns the byte offset just past the closing delimiter
// line of a leading front-matter block, or 0 when the document has none.
// A block opens with a first line that is exactly the delimiter and closes
// at the next delimiter line; the closing line's newline belongs to the
// block. Without a closing line the document is treated as having no front
// matter at all.
func frontMatterEnd(text string) int {
	nl := strings.IndexByte(text, '\n')
	if nl < 0 || !isDelimiterLine(text[:nl]) {
		return 0
	}

	for off := nl + 1; off < len(text); {
		line := text[off:]
		next := len(text)
		if end := strings.IndexByte(line, '\n'); end >= 0 {
			line = line[:end]
			next = off + end + 1
		}
		if isDelimiterLine(line) {
			return next
		}
		off = next
	}
	return 0
}

// isDelimiterLine reports whether a line, trimmed of surrounding whitespace,
// is the three-hyphen front-matter delimiter.
func isDelimiterLine(line string) bool {
	return strings.TrimSpace(line) == "---"
}
