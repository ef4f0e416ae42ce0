package directory

import "strings"

// QueryKind is the class a query falls into for matching.
type QueryKind string

const (
	QueryEmpty   QueryKind = "empty"
	QueryDigits  QueryKind = "digits"
	QueryChosung QueryKind = "chosung"
	QueryHangul  QueryKind = "hangul"
	QueryText    QueryKind = "text"
)

const minDigitProbe = 2

// Classify reports which matching rule leads for q.
func Classify(q string) QueryKind {
	q = strings.TrimSpace(q)
	switch {
	case q == "":
		return QueryEmpty
	case len(OnlyDigits(q)) >= minDigitProbe:
		return QueryDigits
	case IsChosungQuery(q):
		return QueryChosung
	case containsHangulSyllable(q):
		return QueryHangul
	default:
		return QueryText
	}
}

// Match reports whether a record with index idx satisfies the query.
//
// Rules apply in order: a digit probe against the phone digits, then a
// consonant-only query against the chosung key, then a Hangul query by exact
// substring per field, then a plain substring over the combined key. The
// consonant and Hangul rules never fall through.
func Match(idx Index, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}

	if qd := OnlyDigits(q); len(qd) >= minDigitProbe && strings.Contains(idx.Digits, qd) {
		return true
	}

	if IsChosungQuery(q) {
		return strings.Contains(stripSpace(idx.Chosung), q)
	}

	qn := NormalizeBasic(q)
	if qn == "" {
		return true
	}

	if containsHangulSyllable(q) {
		for _, key := range idx.fields() {
			if key != "" && strings.Contains(key, qn) {
				return true
			}
		}
		return strings.Contains(idx.Combined, qn)
	}

	return strings.Contains(idx.Combined, qn)
}
