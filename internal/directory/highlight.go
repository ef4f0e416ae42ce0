package directory

import (
	"strings"
	"unicode"
)

// Segment is a run of display text, marked when it matched the query.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text around the first case-insensitive occurrence of query.
// Consonant-only queries match phonetically, so they are never highlighted.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	q := strings.TrimSpace(query)
	if q == "" || IsChosungQuery(q) {
		return []Segment{{Text: text}}
	}

	tr := []rune(text)
	at := indexFold(tr, []rune(q))
	if at < 0 {
		return []Segment{{Text: text}}
	}
	end := at + len([]rune(q))

	segs := make([]Segment, 0, 3)
	if at > 0 {
		segs = append(segs, Segment{Text: string(tr[:at])})
	}
	segs = append(segs, Segment{Text: string(tr[at:end]), Match: true})
	if end < len(tr) {
		segs = append(segs, Segment{Text: string(tr[end:])})
	}
	return segs
}

// indexFold finds needle in hay comparing rune by rune in lower case.
func indexFold(hay, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j, r := range needle {
			if unicode.ToLower(hay[i+j]) != unicode.ToLower(r) {
				continue outer
			}
		}
		return i
	}
	return -1
}
